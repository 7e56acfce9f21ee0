package session

import (
	"bufio"
	"io"
)

// StartAbortWatcher waits for a single line of user input and fires
// EnterPressed when it arrives. The watcher is inert on end-of-input
// (e.g. a closed stdin) and is never cancelled from outside; it is
// simply abandoned when the run ends.
func StartAbortWatcher(input io.Reader, events *Events) {
	go func() {
		reader := bufio.NewReader(input)
		if _, err := reader.ReadString('\n'); err == nil {
			events.EnterPressed.Fire()
		}
	}()
}
