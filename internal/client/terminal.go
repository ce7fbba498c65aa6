package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when a PIN is needed but stdin is neither a
// terminal nor a pipe with input left.
var ErrNoTerminal = errors.New("no terminal to read the PIN from")

// TerminalPrompter reads PINs from stdin, with echo disabled when stdin is a
// terminal. Prompts go to out.
type TerminalPrompter struct {
	in  *os.File
	out io.Writer
	buf *bufio.Reader
}

func NewTerminalPrompter(in *os.File, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// ReadPin implements [PinPrompter].
func (p *TerminalPrompter) ReadPin(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		pin, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read PIN: %w", err)
		}
		return strings.TrimSpace(string(pin)), nil
	}

	if p.buf == nil {
		p.buf = bufio.NewReader(p.in)
	}
	line, err := p.buf.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrNoTerminal
		}
		return "", fmt.Errorf("read PIN: %w", err)
	}
	return strings.TrimSpace(line), nil
}
