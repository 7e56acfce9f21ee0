package orchestrator

import "fmt"

// OutcomeKind enumerates the terminal results of a run.
type OutcomeKind string

const (
	// OutcomeSuccess means the remote login completed with status 0.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeLoginFailed means the remote login exited nonzero.
	OutcomeLoginFailed OutcomeKind = "login-failed"
	// OutcomeTunnelFailed means the forwarding process could not be
	// started at all.
	OutcomeTunnelFailed OutcomeKind = "tunnel-start-failed"
	// OutcomeTunnelTimedOut means the forwarding process never came up
	// within the readiness timeout.
	OutcomeTunnelTimedOut OutcomeKind = "tunnel-timed-out"
	// OutcomeNoURLFound means the login output never yielded a usable
	// verification URL (missing, or malformed beyond extraction).
	OutcomeNoURLFound OutcomeKind = "no-url-found"
	// OutcomeAborted means the user cancelled the run. Not an error.
	OutcomeAborted OutcomeKind = "aborted-by-user"
)

// Outcome is produced exactly once per run and returned to the caller.
type Outcome struct {
	Kind OutcomeKind
	// RemoteExitCode is the login command's exit status, for
	// OutcomeLoginFailed.
	RemoteExitCode int
	// Diagnostics holds the last captured output lines or error detail,
	// appended to the summary for failures only.
	Diagnostics []string
}

// ExitCode maps the outcome onto the whole-run process exit code.
func (o Outcome) ExitCode() int {
	if o.Kind == OutcomeSuccess {
		return 0
	}
	return 1
}

// Summary returns the single human-readable line describing the outcome.
func (o Outcome) Summary() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "Authentication completed successfully"
	case OutcomeLoginFailed:
		return fmt.Sprintf("Remote SSO login failed (exit code %d)", o.RemoteExitCode)
	case OutcomeTunnelFailed:
		return "Failed to start the SSH tunnel"
	case OutcomeTunnelTimedOut:
		return "Timed out waiting for the SSH tunnel to start"
	case OutcomeNoURLFound:
		return "No usable verification URL found in the login output"
	case OutcomeAborted:
		return "Operation aborted by the user"
	default:
		return fmt.Sprintf("Unknown outcome %q", string(o.Kind))
	}
}
