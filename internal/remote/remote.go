// Package remote builds the ssh invocations used to drive the remote
// AWS CLI and implements the non-interactive profile listing.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"ssoctl/internal/config"
	"ssoctl/internal/process"
)

// LoginSpec returns the process spec for the interactive remote SSO
// login session. -tt forces a TTY so the AWS CLI prints the
// verification URL instead of failing the browser handoff silently.
func LoginSpec(cfg config.Config, sshAlias, profile string) process.Spec {
	return process.Spec{
		Role:            process.RoleLogin,
		Command:         cfg.SSHBinary,
		Args:            []string{"-tt", sshAlias, cfg.AWSBinary, "sso", "login", "--profile", profile},
		GracefulTimeout: cfg.Timeouts.GracefulKill,
	}
}

// TunnelSpec returns the process spec for the callback port forwarding
// session: the remote loopback port is exposed on the same local port,
// with no remote command (-N).
func TunnelSpec(cfg config.Config, sshAlias string, port int) process.Spec {
	return process.Spec{
		Role:            process.RoleTunnel,
		Command:         cfg.SSHBinary,
		Args:            []string{"-N", "-L", fmt.Sprintf("%d:127.0.0.1:%d", port, port), sshAlias},
		GracefulTimeout: cfg.Timeouts.GracefulKill,
	}
}

// ListProfiles fetches the AWS CLI profiles configured on the remote
// host. It runs `aws configure list-profiles` over a non-interactive
// ssh session and returns the newline-separated names.
func ListProfiles(ctx context.Context, cfg config.Config, sshAlias string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeouts.ProfileList)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.SSHBinary, sshAlias, cfg.AWSBinary, "configure", "list-profiles")
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("timed out fetching profiles from %s", sshAlias)
		}
		return nil, fmt.Errorf("failed to fetch profiles from %s: %w\nStderr: %s", sshAlias, err, strings.TrimSpace(stderr.String()))
	}

	profiles := parseProfiles(out.String())
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no AWS profiles found on %s", sshAlias)
	}
	return profiles, nil
}

func parseProfiles(output string) []string {
	var profiles []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles
}
