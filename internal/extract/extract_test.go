package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindURL(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantURL string
		wantOK  bool
	}{
		{
			name:   "no url",
			line:   "Attempting to automatically open the SSO authorization page",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
		{
			name:    "plain https url",
			line:    "https://device.sso.eu-west-1.amazonaws.com/",
			wantURL: "https://device.sso.eu-west-1.amazonaws.com/",
			wantOK:  true,
		},
		{
			name:    "url embedded in prose",
			line:    "If the browser does not open, visit https://example.com/authorize?code=ABCD yourself",
			wantURL: "https://example.com/authorize?code=ABCD",
			wantOK:  true,
		},
		{
			name:    "first of multiple urls wins",
			line:    "http://first.example/a then https://second.example/b",
			wantURL: "http://first.example/a",
			wantOK:  true,
		},
		{
			name:   "scheme-less host is not a url",
			line:   "visit example.com:8080 for details",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindURL(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantURL, got)
		})
	}
}

func TestExtractPortRoundTrip(t *testing.T) {
	raw := "https://oidc.eu-west-1.amazonaws.com/authorize?client_id=abc&redirect_uri=http%3A%2F%2F127.0.0.1%3A54321%2Fcb&response_type=code"

	target, err := ExtractPort(raw)
	require.NoError(t, err)

	assert.Equal(t, 54321, target.Port)
	assert.Contains(t, target.DecodedURL, "redirect_uri=http://127.0.0.1:54321/cb")
}

func TestExtractPortAlreadyDecoded(t *testing.T) {
	raw := "https://oidc.example.com/authorize?redirect_uri=http://127.0.0.1:8080/oauth/callback"

	target, err := ExtractPort(raw)
	require.NoError(t, err)
	assert.Equal(t, 8080, target.Port)
}

func TestExtractPortErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "missing redirect_uri",
			raw:     "https://oidc.example.com/authorize?client_id=abc",
			wantErr: ErrNoRedirectURI,
		},
		{
			name:    "redirect_uri without port",
			raw:     "https://oidc.example.com/authorize?redirect_uri=http%3A%2F%2F127.0.0.1%2Fcb",
			wantErr: ErrNoPort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPort(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestExtractPortOutOfRange(t *testing.T) {
	_, err := ExtractPort("https://oidc.example.com/authorize?redirect_uri=http%3A%2F%2F127.0.0.1%3A99999%2Fcb")
	require.Error(t, err)
}

// ExtractPort is pure: the same input must always yield the same output.
func TestExtractPortDeterministic(t *testing.T) {
	raw := "https://oidc.example.com/authorize?redirect_uri=http%3A%2F%2F127.0.0.1%3A41500%2Fcb"

	first, err := ExtractPort(raw)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ExtractPort(raw)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
