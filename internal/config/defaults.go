package config

import "time"

// GetDefaultConfig returns the built-in configuration. User configuration
// is layered on top of these values by LoadConfig.
func GetDefaultConfig() Config {
	return Config{
		SSHBinary: "ssh",
		AWSBinary: "aws",
		LogLevel:  "info",
		Timeouts: TimeoutSettings{
			TunnelReady:  10 * time.Second,
			SettleDelay:  1 * time.Second,
			GracefulKill: 5 * time.Second,
			ProfileList:  30 * time.Second,
		},
	}
}
