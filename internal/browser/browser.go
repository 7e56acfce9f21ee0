// Package browser opens URLs in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the default browser on url. The launch is fire-and-forget:
// the launcher process is started but never waited on for completion, and
// the caller does not coordinate on the browser's lifetime.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default: // linux and friends
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the launcher so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
