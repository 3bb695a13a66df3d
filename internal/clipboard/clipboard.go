// Package clipboard copies text to the system clipboard through the
// terminal with OSC 52, which works locally and over SSH without a platform
// clipboard helper.
package clipboard

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
)

// getenv is a test seam for os.Getenv.
var getenv = os.Getenv

// Clipboard writes OSC 52 sequences to a terminal and optionally clears the
// clipboard again after a delay.
type Clipboard struct {
	mu    sync.Mutex
	w     io.Writer
	timer *time.Timer
}

// New returns a Clipboard writing to w, usually the controlling terminal.
func New(w io.Writer) *Clipboard {
	return &Clipboard{w: w}
}

// Copy places text on the clipboard. When clearAfter is positive the
// clipboard is cleared once it elapses; a later Copy or Clear cancels the
// pending clear.
func (c *Clipboard) Copy(text string, clearAfter time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	if err := c.writeLocked(osc52.New(text)); err != nil {
		return err
	}
	if clearAfter > 0 {
		var t *time.Timer
		t = time.AfterFunc(clearAfter, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.timer != t {
				return
			}
			_ = c.writeLocked(osc52.Clear())
			c.timer = nil
		})
		c.timer = t
	}
	return nil
}

// Clear empties the clipboard now.
func (c *Clipboard) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	return c.writeLocked(osc52.Clear())
}

// Flush clears the clipboard now if a clear is still pending, so a password
// does not outlive the process that copied it.
func (c *Clipboard) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer == nil {
		return nil
	}
	c.stopLocked()
	return c.writeLocked(osc52.Clear())
}

// Stop cancels a pending clear without touching the clipboard.
func (c *Clipboard) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

func (c *Clipboard) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Clipboard) writeLocked(seq osc52.Sequence) error {
	switch {
	case inTmux():
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.w)
	return err
}

// inTmux detects a local tmux session or one forwarded through SSH.
func inTmux() bool {
	return getenv("TMUX") != "" || strings.HasPrefix(getenv("TERM"), "tmux")
}
