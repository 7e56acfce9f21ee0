package session

import (
	"ssoctl/internal/process"
	"ssoctl/pkg/logging"
)

// Tunnel drives the ssh port-forwarding process. It is only started once
// a callback port is known and stays alive until Terminate.
type Tunnel struct {
	handle *process.Handle
}

// StartTunnel spawns the forwarding command and fires TunnelReady as
// soon as the process is running. ssh -N gives no confirmation output,
// so "ready" means "forwarding process launched"; the orchestrator
// compensates with a settle delay before opening the browser.
func StartTunnel(spec process.Spec, events *Events) (*Tunnel, error) {
	handle, err := process.Spawn(spec)
	if err != nil {
		return nil, err
	}

	t := &Tunnel{handle: handle}
	logging.Debug("tunnel", "forwarding session started, PID %d", handle.PID())
	events.TunnelReady.Fire()

	// Drain output so the child never blocks on a full pipe; ssh -L
	// rarely prints, but errors (bind failures, auth prompts) do land here.
	go func() {
		for {
			line, ok := handle.ReadLine()
			if !ok {
				return
			}
			logging.Debug("tunnel", "%s", line)
		}
	}()

	return t, nil
}

// Terminate kills the forwarding process.
func (t *Tunnel) Terminate() {
	t.handle.Terminate()
}

// ProcessState exposes the child record state for leak checks.
func (t *Tunnel) ProcessState() process.State {
	return t.handle.State()
}
