package promptsvc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer is the blocking yes/no capability required before destructive
// operations.
type Confirmer interface {
	Confirm(msg string) bool
}

type stdioConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Confirmer = (*stdioConfirmer)(nil)

// NewStdioConfirmer prompts on out and reads the answer from in. Pass an
// existing *bufio.Reader when in is shared with another line reader, so
// buffered input is not lost between them.
func NewStdioConfirmer(in io.Reader, out io.Writer) Confirmer {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &stdioConfirmer{in: br, out: out}
}

func (c *stdioConfirmer) Confirm(msg string) bool {
	_, _ = fmt.Fprintf(c.out, "%s [y/N] ", msg)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AlwaysYes confirms everything; for tests and non-interactive runs.
type AlwaysYes struct{}

func (AlwaysYes) Confirm(string) bool { return true }
