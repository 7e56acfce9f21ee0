// Package process wraps a single spawned external command and owns its
// lifecycle: merged line-by-line output, graceful-then-forceful
// termination, and exit status observation.
package process

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// Role identifies what a child process was spawned for.
type Role string

const (
	RoleLogin  Role = "login"
	RoleTunnel Role = "tunnel"
)

// State of a child process record.
type State string

const (
	StateRunning    State = "running"
	StateTerminated State = "terminated"
)

// DefaultGracefulTimeout is how long Terminate waits after SIGTERM
// before escalating to SIGKILL.
const DefaultGracefulTimeout = 5 * time.Second

// maxLineBytes bounds a single output line. Lines beyond this stop the
// scan; the stream then ends early.
const maxLineBytes = 1024 * 1024

// Spec describes the command to spawn.
type Spec struct {
	Role            Role
	Command         string
	Args            []string
	GracefulTimeout time.Duration // defaults to DefaultGracefulTimeout when zero
}

// Handle owns one spawned external command. Stdout and stderr are merged
// into a single line stream consumed via ReadLine. Terminate is
// idempotent and safe to call on an already-exited process.
type Handle struct {
	role            Role
	cmd             *exec.Cmd
	lines           chan string
	done            chan struct{}
	gracefulTimeout time.Duration

	mu       sync.Mutex
	exitCode int
	state    State
}

// Spawn starts the command described by spec. The returned handle is
// already reading output; the caller must drain ReadLine until
// end-of-stream or call Terminate.
func Spawn(spec Spec) (*Handle, error) {
	if spec.GracefulTimeout <= 0 {
		spec.GracefulTimeout = DefaultGracefulTimeout
	}

	cmd := exec.Command(spec.Command, spec.Args...)

	// Merge stdout and stderr into one pipe so output order is preserved
	// and the actor only has a single stream to drain.
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create output pipe for %s: %w", spec.Command, err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, fmt.Errorf("failed to start %s: %w", spec.Command, err)
	}
	// The child holds its own copy of the write end; close ours so the
	// read side sees EOF when the child exits.
	pw.Close()

	h := &Handle{
		role:            spec.Role,
		cmd:             cmd,
		lines:           make(chan string, 64),
		done:            make(chan struct{}),
		gracefulTimeout: spec.GracefulTimeout,
		state:           StateRunning,
	}

	go func() {
		defer pr.Close()

		scanner := bufio.NewScanner(pr)
		// Single lines can run long (prompts, URLs with embedded state);
		// raise the token limit well past the 64KB scanner default.
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
		for scanner.Scan() {
			h.lines <- scanner.Text()
		}
		close(h.lines)

		err := cmd.Wait()
		code := 0
		if err != nil {
			code = 1
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			}
		}

		h.mu.Lock()
		h.exitCode = code
		h.mu.Unlock()
		close(h.done)
	}()

	return h, nil
}

// Role returns what this process was spawned for.
func (h *Handle) Role() Role {
	return h.role
}

// PID returns the process ID of the spawned command.
func (h *Handle) PID() int {
	return h.cmd.Process.Pid
}

// ReadLine returns the next output line. ok is false once the stream has
// ended (the process closed its output, usually because it exited).
func (h *Handle) ReadLine() (line string, ok bool) {
	line, ok = <-h.lines
	return line, ok
}

// ExitStatus blocks until the process has exited and returns its exit
// code. Only meaningful after ReadLine reported end-of-stream.
func (h *Handle) ExitStatus() int {
	<-h.done
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode
}

// State reports whether the record is still running or has been
// terminated (either by Terminate or by natural exit observed through
// ExitStatus/Terminate).
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Terminate sends SIGTERM, waits up to the graceful timeout, then
// escalates to SIGKILL and waits for exit confirmation. Safe to call
// multiple times and on an already-exited process.
func (h *Handle) Terminate() {
	h.mu.Lock()
	if h.state == StateTerminated {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	select {
	case <-h.done:
		// Already exited; just mark the record.
	default:
		// Drain undelivered output so the reader goroutine can reach
		// Wait even if the consumer stopped calling ReadLine.
		go func() {
			for range h.lines {
			}
		}()

		// Signal errors are ignored: the process may exit between the
		// check above and the signal landing.
		h.cmd.Process.Signal(syscall.SIGTERM)

		select {
		case <-h.done:
		case <-time.After(h.gracefulTimeout):
			h.cmd.Process.Kill()
			<-h.done
		}
	}

	h.mu.Lock()
	h.state = StateTerminated
	h.mu.Unlock()
}
