package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ssoctl/internal/config"
	"ssoctl/internal/process"
)

func TestLoginSpec(t *testing.T) {
	cfg := config.GetDefaultConfig()

	spec := LoginSpec(cfg, "bastion", "prod-admin")

	assert.Equal(t, process.RoleLogin, spec.Role)
	assert.Equal(t, "ssh", spec.Command)
	assert.Equal(t, []string{"-tt", "bastion", "aws", "sso", "login", "--profile", "prod-admin"}, spec.Args)
	assert.Equal(t, cfg.Timeouts.GracefulKill, spec.GracefulTimeout)
}

func TestTunnelSpec(t *testing.T) {
	cfg := config.GetDefaultConfig()

	spec := TunnelSpec(cfg, "bastion", 54321)

	assert.Equal(t, process.RoleTunnel, spec.Role)
	assert.Equal(t, "ssh", spec.Command)
	assert.Equal(t, []string{"-N", "-L", "54321:127.0.0.1:54321", "bastion"}, spec.Args)
}

func TestParseProfiles(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "plain list",
			output: "default\nprod-admin\nstaging\n",
			want:   []string{"default", "prod-admin", "staging"},
		},
		{
			name:   "blank lines and whitespace dropped",
			output: "\n  default  \n\nprod-admin\n   \n",
			want:   []string{"default", "prod-admin"},
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseProfiles(tt.output))
		})
	}
}
