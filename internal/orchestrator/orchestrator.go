// Package orchestrator coordinates the login session, the callback
// tunnel and the abort watcher into a single terminal outcome.
//
// The state machine is strictly ordered: the tunnel only starts after a
// verification URL (and so a callback port) is known, and the browser is
// only opened after the tunnel process is up and has had a settle delay.
// All waits are event-driven selects; nothing polls. Every child process
// started during a run is terminated before Run returns, whatever the
// outcome.
package orchestrator

import (
	"strconv"
	"time"

	"ssoctl/internal/extract"
	"ssoctl/internal/session"
	"ssoctl/pkg/logging"
)

// State of the run.
type State string

const (
	StateInit           State = "init"
	StateAwaitingURL    State = "awaiting-url"
	StateAwaitingTunnel State = "awaiting-tunnel"
	StateAuthenticating State = "authenticating"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
	StateAborted        State = "aborted"
)

// StatusKind distinguishes progress announcements from reached
// milestones so the rendering layer can pick glyphs/styles.
type StatusKind int

const (
	StatusProgress StatusKind = iota
	StatusReady
)

// LoginSession is the orchestrator's view of the login actor.
type LoginSession interface {
	Target() (extract.Target, bool)
	Result() session.LoginResult
	Terminate()
}

// Tunnel is the orchestrator's view of the tunnel actor.
type Tunnel interface {
	Terminate()
}

// Deps are the collaborators a run is wired up with. Tests substitute
// scripted doubles; cmd/login wires the real actors.
type Deps struct {
	// StartLogin spawns the remote login actor.
	StartLogin func(events *session.Events) (LoginSession, error)
	// StartTunnel spawns the forwarding actor for the discovered port.
	StartTunnel func(events *session.Events, port int) (Tunnel, error)
	// StartAbortWatcher arms the user-abort actor.
	StartAbortWatcher func(events *session.Events)
	// OpenBrowser opens the decoded verification URL. Fire-and-forget.
	OpenBrowser func(url string) error
	// OnAuthURL is an optional hook invoked with the decoded URL right
	// before the browser opens (clipboard copy, display).
	OnAuthURL func(url string)
	// Status renders one user-visible status line.
	Status func(kind StatusKind, line string)

	TunnelReadyTimeout time.Duration
	SettleDelay        time.Duration
}

// Orchestrator runs the state machine once.
type Orchestrator struct {
	deps   Deps
	events *session.Events
	state  State

	login  LoginSession
	tunnel Tunnel
}

// New returns an orchestrator for a single run.
func New(deps Deps) *Orchestrator {
	if deps.Status == nil {
		deps.Status = func(StatusKind, string) {}
	}
	return &Orchestrator{
		deps:   deps,
		events: session.NewEvents(),
		state:  StateInit,
	}
}

// Events exposes the run's event set so the caller can wire actors to it.
func (o *Orchestrator) Events() *session.Events {
	return o.events
}

// State returns the current state, mainly for tests.
func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) setState(s State) {
	logging.Debug("orchestrator", "state %s -> %s", o.state, s)
	o.state = s
}

// Run drives the machine to a terminal state and returns the outcome.
// On return every child process started during the run has been
// terminated.
func (o *Orchestrator) Run() Outcome {
	o.deps.Status(StatusProgress, "Starting aws sso login on the remote server…")

	login, err := o.deps.StartLogin(o.events)
	if err != nil {
		o.setState(StateFailed)
		return Outcome{Kind: OutcomeLoginFailed, RemoteExitCode: 1, Diagnostics: []string{err.Error()}}
	}
	o.login = login
	o.setState(StateAwaitingURL)

	select {
	case <-o.events.URLReady.Done():
	case <-o.events.LoginError.Done():
		// URLReady may have raced in together with the error; the URL
		// winning means the login is still alive and we can proceed.
		if !o.events.URLReady.Fired() {
			return o.fail(o.loginFailureOutcome())
		}
	}

	target, ok := o.login.Target()
	if !ok {
		return o.fail(Outcome{Kind: OutcomeNoURLFound})
	}
	o.deps.Status(StatusReady, "Authentication URL received")
	o.deps.Status(StatusReady, "Detected callback port: "+strconv.Itoa(target.Port))

	o.setState(StateAwaitingTunnel)
	o.deps.Status(StatusProgress, "Starting SSH tunnel (port "+strconv.Itoa(target.Port)+")…")

	tunnel, err := o.deps.StartTunnel(o.events, target.Port)
	if err != nil {
		return o.fail(Outcome{Kind: OutcomeTunnelFailed, Diagnostics: []string{err.Error()}})
	}
	o.tunnel = tunnel

	select {
	case <-o.events.TunnelReady.Done():
	case <-o.events.LoginError.Done():
		return o.fail(o.loginFailureOutcome())
	case <-time.After(o.deps.TunnelReadyTimeout):
		return o.fail(Outcome{Kind: OutcomeTunnelTimedOut})
	}
	o.deps.Status(StatusReady, "SSH tunnel established")

	o.setState(StateAuthenticating)

	// ssh -L gives no readiness confirmation; give the tunnel a moment
	// to bind before pointing a browser at it.
	time.Sleep(o.deps.SettleDelay)

	o.deps.Status(StatusProgress, "Opening the browser for authentication…")
	if o.deps.OnAuthURL != nil {
		o.deps.OnAuthURL(target.DecodedURL)
	}
	if o.deps.OpenBrowser != nil {
		if err := o.deps.OpenBrowser(target.DecodedURL); err != nil {
			logging.Warn("orchestrator", "failed to open browser: %v", err)
			o.deps.Status(StatusProgress, "Could not open the browser; open the URL above manually")
		}
	}

	if o.deps.StartAbortWatcher != nil {
		o.deps.StartAbortWatcher(o.events)
	}
	o.deps.Status(StatusProgress, "Press Enter to abort, or wait for authentication to complete…")

	select {
	case <-o.events.EnterPressed.Done():
		return o.abort()
	case <-o.events.LoginDone.Done():
		// User cancellation wins over a concurrently-completing login.
		if o.events.EnterPressed.Fired() {
			return o.abort()
		}
		return o.succeed()
	case <-o.events.LoginError.Done():
		if o.events.EnterPressed.Fired() {
			return o.abort()
		}
		return o.fail(o.loginFailureOutcome())
	}
}

// succeed terminates the tunnel (the login already exited) and returns
// the success outcome.
func (o *Orchestrator) succeed() Outcome {
	o.setState(StateSucceeded)
	o.terminateChildren()
	return Outcome{Kind: OutcomeSuccess}
}

// fail terminates any running children and returns the failure outcome.
func (o *Orchestrator) fail(outcome Outcome) Outcome {
	o.setState(StateFailed)
	o.terminateChildren()
	return outcome
}

// abort terminates all running children and returns the user-abort
// outcome.
func (o *Orchestrator) abort() Outcome {
	o.setState(StateAborted)
	o.terminateChildren()
	return Outcome{Kind: OutcomeAborted}
}

// terminateChildren transitions every spawned child record to
// terminated. Terminate is idempotent, so this is safe whatever state
// the processes are in.
func (o *Orchestrator) terminateChildren() {
	if o.login != nil {
		o.login.Terminate()
	}
	if o.tunnel != nil {
		o.tunnel.Terminate()
	}
}

// loginFailureOutcome derives the failure outcome from the login actor's
// result.
func (o *Orchestrator) loginFailureOutcome() Outcome {
	result := o.login.Result()
	if result.NoURL {
		diags := result.LastOutput
		if result.ExtractErr != nil {
			diags = append([]string{result.ExtractErr.Error()}, diags...)
		}
		return Outcome{Kind: OutcomeNoURLFound, RemoteExitCode: result.ExitCode, Diagnostics: diags}
	}
	return Outcome{Kind: OutcomeLoginFailed, RemoteExitCode: result.ExitCode, Diagnostics: result.LastOutput}
}
