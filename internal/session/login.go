package session

import (
	"strings"
	"sync"

	"ssoctl/internal/extract"
	"ssoctl/internal/process"
	"ssoctl/pkg/logging"
)

// lastOutputLines is how many trailing output lines are kept as
// diagnostic context for a failed login.
const lastOutputLines = 5

// LoginResult captures how the remote login session ended. Valid once
// LoginDone or LoginError has fired.
type LoginResult struct {
	// ExitCode of the remote login command.
	ExitCode int
	// LastOutput holds the final output lines, kept for diagnostics.
	LastOutput []string
	// NoURL is set when the session ended (or URL extraction failed)
	// without ever producing a usable verification URL.
	NoURL bool
	// ExtractErr is the extraction failure, when NoURL was caused by a
	// malformed URL rather than a missing one.
	ExtractErr error
}

// LoginSession drives the remote `aws sso login` process: it streams
// output, publishes URLReady on the first extractable verification URL,
// and publishes LoginDone or LoginError when the process finishes.
type LoginSession struct {
	handle *process.Handle
	events *Events
	echo   func(line string)

	mu     sync.Mutex
	target extract.Target
	hasURL bool
	result LoginResult
}

// StartLoginSession spawns the login command and begins streaming its
// output. A spawn failure is returned directly; everything after a
// successful spawn is reported through the event set.
func StartLoginSession(spec process.Spec, events *Events, echo func(line string)) (*LoginSession, error) {
	handle, err := process.Spawn(spec)
	if err != nil {
		return nil, err
	}

	s := &LoginSession{
		handle: handle,
		events: events,
		echo:   echo,
	}
	logging.Debug("login", "remote login session started, PID %d", handle.PID())

	go s.run()
	return s, nil
}

func (s *LoginSession) run() {
	var lastLines []string
	urlSeen := false

	for {
		line, ok := s.handle.ReadLine()
		if !ok {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			if s.echo != nil {
				s.echo(trimmed)
			}
			lastLines = append(lastLines, trimmed)
			if len(lastLines) > lastOutputLines {
				lastLines = lastLines[1:]
			}
		}

		if urlSeen {
			continue
		}
		rawURL, found := extract.FindURL(trimmed)
		if !found {
			continue
		}
		urlSeen = true

		target, err := extract.ExtractPort(rawURL)
		if err != nil {
			logging.Error("login", err, "failed to extract callback port from %s", rawURL)
			s.mu.Lock()
			s.result = LoginResult{NoURL: true, ExtractErr: err, LastOutput: lastLines}
			s.mu.Unlock()
			s.events.LoginError.Fire()
			// The process is left to the orchestrator's cleanup.
			return
		}

		s.mu.Lock()
		s.target = target
		s.hasURL = true
		s.mu.Unlock()
		s.events.URLReady.Fire()
		// The remote process keeps running after printing the URL;
		// continue draining until end-of-stream.
	}

	code := s.handle.ExitStatus()
	logging.Debug("login", "remote login session exited with status %d", code)

	s.mu.Lock()
	delivered := s.hasURL
	s.result = LoginResult{ExitCode: code, LastOutput: lastLines, NoURL: !delivered}
	s.mu.Unlock()

	switch {
	case code == 0 && delivered:
		s.events.LoginDone.Fire()
	default:
		// Nonzero exit, or a clean exit that never produced a URL.
		s.events.LoginError.Fire()
	}
}

// Target returns the callback target discovered in the login output.
// ok is false until URLReady has fired.
func (s *LoginSession) Target() (extract.Target, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, s.hasURL
}

// Result returns the outcome of the session. Only meaningful after
// LoginDone or LoginError has fired.
func (s *LoginSession) Result() LoginResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Terminate kills the underlying remote session process.
func (s *LoginSession) Terminate() {
	s.handle.Terminate()
}

// ProcessState exposes the child record state for leak checks.
func (s *LoginSession) ProcessState() process.State {
	return s.handle.State()
}
