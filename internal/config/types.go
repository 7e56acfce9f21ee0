package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure for ssoctl.
type Config struct {
	// SSHBinary is the local ssh client used for both the login session
	// and the tunnel.
	SSHBinary string `yaml:"sshBinary,omitempty"`
	// AWSBinary is the AWS CLI binary name on the remote host.
	AWSBinary string `yaml:"awsBinary,omitempty"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel,omitempty"`

	Timeouts TimeoutSettings `yaml:"timeouts"`
}

// TimeoutSettings collects every bounded wait in a run.
type TimeoutSettings struct {
	// TunnelReady is how long the orchestrator waits for the forwarding
	// process to come up before failing the run.
	TunnelReady time.Duration `yaml:"tunnelReady,omitempty"`
	// SettleDelay compensates for ssh -L giving no readiness signal:
	// the browser is opened only after the tunnel process has been
	// running this long.
	SettleDelay time.Duration `yaml:"settleDelay,omitempty"`
	// GracefulKill is the SIGTERM-to-SIGKILL escalation interval.
	GracefulKill time.Duration `yaml:"gracefulKill,omitempty"`
	// ProfileList bounds the non-interactive remote profile listing.
	ProfileList time.Duration `yaml:"profileList,omitempty"`
}

// UnmarshalYAML accepts Go duration strings ("10s", "1m") for the
// timeout fields, which yaml.v3 does not handle for time.Duration
// out of the box.
func (t *TimeoutSettings) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TunnelReady  string `yaml:"tunnelReady"`
		SettleDelay  string `yaml:"settleDelay"`
		GracefulKill string `yaml:"gracefulKill"`
		ProfileList  string `yaml:"profileList"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parse := func(field, s string, dst *time.Duration) error {
		if s == "" {
			return nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration for timeouts.%s: %w", field, err)
		}
		*dst = d
		return nil
	}

	if err := parse("tunnelReady", raw.TunnelReady, &t.TunnelReady); err != nil {
		return err
	}
	if err := parse("settleDelay", raw.SettleDelay, &t.SettleDelay); err != nil {
		return err
	}
	if err := parse("gracefulKill", raw.GracefulKill, &t.GracefulKill); err != nil {
		return err
	}
	return parse("profileList", raw.ProfileList, &t.ProfileList)
}
