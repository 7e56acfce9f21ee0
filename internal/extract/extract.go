// Package extract locates the SSO verification URL in remote command
// output and derives the local callback port from it.
//
// `aws sso login` prints a browser URL whose redirect_uri query parameter
// points at the loopback listener the AWS CLI opened on the remote host.
// That port is the one we need to forward, so both steps live here as
// pure functions.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// Target describes the callback listener discovered in the login output.
// It is created once per run and never mutated afterwards.
type Target struct {
	// Port is the remote loopback port the AWS CLI listens on for the
	// OAuth redirect (1-65535).
	Port int
	// DecodedURL is the percent-decoded verification URL to open in the
	// local browser.
	DecodedURL string
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Sentinel errors for the failure modes of ExtractPort.
var (
	ErrNoRedirectURI = errors.New("no redirect_uri parameter in URL")
	ErrNoPort        = errors.New("redirect_uri has no explicit port")
)

// FindURL returns the first http(s) URL embedded in line, if any.
func FindURL(line string) (string, bool) {
	match := urlPattern.FindString(line)
	return match, match != ""
}

// ExtractPort percent-decodes rawURL, reads its redirect_uri query
// parameter and returns the port of that nested URL together with the
// decoded verification URL.
func ExtractPort(rawURL string) (Target, error) {
	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		return Target{}, fmt.Errorf("failed to decode URL %q: %w", rawURL, err)
	}

	parsed, err := url.Parse(decoded)
	if err != nil {
		return Target{}, fmt.Errorf("failed to parse URL %q: %w", decoded, err)
	}

	redirectURI := parsed.Query().Get("redirect_uri")
	if redirectURI == "" {
		return Target{}, fmt.Errorf("%w: %s", ErrNoRedirectURI, decoded)
	}

	redirectParsed, err := url.Parse(redirectURI)
	if err != nil {
		return Target{}, fmt.Errorf("failed to parse redirect_uri %q: %w", redirectURI, err)
	}

	portStr := redirectParsed.Port()
	if portStr == "" {
		return Target{}, fmt.Errorf("%w: %s", ErrNoPort, redirectURI)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Target{}, fmt.Errorf("invalid port %q in redirect_uri %s", portStr, redirectURI)
	}

	return Target{Port: port, DecodedURL: decoded}, nil
}
