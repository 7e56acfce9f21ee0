package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"ssoctl/internal/browser"
	"ssoctl/internal/color"
	"ssoctl/internal/config"
	"ssoctl/internal/orchestrator"
	"ssoctl/internal/remote"
	"ssoctl/internal/session"
	"ssoctl/internal/tui"
	"ssoctl/pkg/logging"
)

// errRunFailed signals a non-success outcome whose summary has already
// been printed; Execute only needs the nonzero exit code. Cobra's error
// printing is silenced right before returning it, so errors that have
// not been printed yet (config load, argument validation) still surface.
var errRunFailed = errors.New("login run failed")

func failSilently(cmd *cobra.Command) error {
	cmd.SilenceErrors = true
	return errRunFailed
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <ssh-alias> [profile]",
		Short: "Run aws sso login on a remote host and authenticate locally",
		Long: `Connects to a remote server via SSH, runs aws sso login there, forwards
the OAuth callback port to this machine, and opens the default browser
for authentication.

Arguments:
  <ssh-alias>: SSH alias (from ~/.ssh/config) used to connect to the remote server.
  [profile]:   AWS CLI profile name for aws sso login. If omitted, you will be
               prompted to choose from the profiles available on the remote server.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runLogin,
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

	sshAlias := args[0]
	profile := ""
	if len(args) == 2 {
		profile = args[1]
	} else {
		fmt.Println(color.Step("No profile specified. Fetching profiles from %s…", color.Bold(sshAlias)))
		profiles, err := remote.ListProfiles(cmd.Context(), cfg, sshAlias)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Fail("%v", err))
			return failSilently(cmd)
		}
		profile, err = tui.SelectProfile(profiles)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Fail("%v", err))
			return failSilently(cmd)
		}
	}

	fmt.Println(color.Panel("AWS SSO Login via SSH", fmt.Sprintf(
		"SSH alias:  %s\nProfile:    %s", color.Bold(sshAlias), color.Bold(profile))))

	outcome := orchestrator.New(loginRunDeps(cfg, sshAlias, profile, os.Stdin)).Run()

	switch outcome.Kind {
	case orchestrator.OutcomeSuccess:
		fmt.Println(color.OK("%s", outcome.Summary()))
		return nil
	case orchestrator.OutcomeAborted:
		fmt.Fprintln(os.Stderr, color.Warn("%s", outcome.Summary()))
	default:
		fmt.Fprintln(os.Stderr, color.Fail("%s", outcome.Summary()))
		for _, diag := range outcome.Diagnostics {
			// diag is raw remote output and may contain % characters.
			fmt.Fprintln(os.Stderr, "  "+color.Muted("%s", diag))
		}
	}
	return failSilently(cmd)
}

// loginRunDeps wires the real actors, browser and clipboard into an
// orchestrator dependency set.
func loginRunDeps(cfg config.Config, sshAlias, profile string, abortInput io.Reader) orchestrator.Deps {
	echo := func(line string) {
		fmt.Println("  " + color.Muted("[sso] %s", line))
	}

	return orchestrator.Deps{
		StartLogin: func(events *session.Events) (orchestrator.LoginSession, error) {
			return session.StartLoginSession(remote.LoginSpec(cfg, sshAlias, profile), events, echo)
		},
		StartTunnel: func(events *session.Events, port int) (orchestrator.Tunnel, error) {
			return session.StartTunnel(remote.TunnelSpec(cfg, sshAlias, port), events)
		},
		StartAbortWatcher: func(events *session.Events) {
			session.StartAbortWatcher(abortInput, events)
		},
		OpenBrowser: browser.Open,
		OnAuthURL: func(url string) {
			fmt.Println("  " + color.Bold(url))
			if err := clipboard.WriteAll(url); err == nil {
				fmt.Println("  " + color.Muted("(URL copied to clipboard)"))
			}
		},
		Status: func(kind orchestrator.StatusKind, line string) {
			if kind == orchestrator.StatusReady {
				fmt.Println(color.OK("%s", line))
			} else {
				fmt.Println(color.Step("%s", line))
			}
		},
		TunnelReadyTimeout: cfg.Timeouts.TunnelReady,
		SettleDelay:        cfg.Timeouts.SettleDelay,
	}
}
