package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalPrompter struct {
	in  *bufio.Reader
	fd  int
	out io.Writer
}

// NewTerminalPrompter reads answers from in and writes labels to out.
// Passwords are read without echo when in is a terminal.
func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	return &terminalPrompter{
		in:  bufio.NewReader(in),
		fd:  int(in.Fd()),
		out: out,
	}
}

func (p *terminalPrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readLine()
}

func (p *terminalPrompter) PromptPassword(label string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.Prompt(label)
	}

	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func (p *terminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
