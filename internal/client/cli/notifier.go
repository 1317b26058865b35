package cli

import (
	"fmt"
	"io"
	"sync"
)

// consoleNotifier prints table notifications. Saves finish on their own
// goroutines, so writes are serialized.
type consoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleNotifier(w io.Writer) *consoleNotifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) print(level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", level, msg)
}

func (n *consoleNotifier) Success(msg string) { n.print("ok", msg) }
func (n *consoleNotifier) Info(msg string)    { n.print("info", msg) }
func (n *consoleNotifier) Warning(msg string) { n.print("warn", msg) }
func (n *consoleNotifier) Error(msg string)   { n.print("error", msg) }
