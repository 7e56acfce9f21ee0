package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ssoctl/internal/config"
	"ssoctl/internal/remote"
	"ssoctl/pkg/logging"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles <ssh-alias>",
		Short: "List AWS CLI profiles configured on a remote host",
		Long: `Connects to the remote server over SSH and prints the AWS CLI profiles
available there (aws configure list-profiles), one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

			profiles, err := remote.ListProfiles(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}
			for _, p := range profiles {
				fmt.Println(p)
			}
			return nil
		},
	}
}
