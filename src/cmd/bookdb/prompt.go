package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

// prompter abstracts line input so the menu works both on a real terminal
// (readline-style editing via liner) and on piped input in tests.
type prompter interface {
	Prompt(label string) (string, error)
	Close()
}

// newPrompter picks liner only when the command is actually attached to a
// terminal; redirected stdin falls back to plain buffered reads.
func newPrompter(cmd *cobra.Command) prompter {
	if cmd.InOrStdin() == os.Stdin && liner.TerminalSupported() {
		return newLinerPrompter()
	}
	return &readerPrompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

type linerPrompter struct {
	state *liner.State
}

func newLinerPrompter() *linerPrompter {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &linerPrompter{state: st}
}

func (p *linerPrompter) Prompt(label string) (string, error) {
	line, err := p.state.Prompt(label)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

func (p *linerPrompter) Close() { _ = p.state.Close() }

type readerPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *readerPrompter) Prompt(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *readerPrompter) Close() {}
