// Package clipboard writes text to the system clipboard through the terminal.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// OSC52 writes an OSC 52 escape sequence, which most terminal emulators turn
// into a clipboard write. It also works over SSH.
type OSC52 struct {
	out io.Writer
}

// NewOSC52 returns a clipboard writing to out. Stderr is used when out is nil
// so the sequence does not interleave with the TUI frame on stdout.
func NewOSC52(out io.Writer) *OSC52 {
	if out == nil {
		out = os.Stderr
	}
	return &OSC52{out: out}
}

func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	if isMultiplexed("TMUX") {
		seq = seq.Tmux()
	} else if isMultiplexed("STY") {
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	return nil
}

func isMultiplexed(envKey string) bool {
	return strings.TrimSpace(os.Getenv(envKey)) != ""
}

// Memory keeps the last copied text. Used in tests and when no terminal is
// attached.
type Memory struct {
	Last string
}

func (m *Memory) Copy(text string) error {
	m.Last = text
	return nil
}
