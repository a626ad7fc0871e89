// Package prompt reads command lines interactively: line editing with
// tab completion when stdin is a terminal, plain line reading otherwise.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"fortio.org/log"
	"golang.org/x/term"
)

type Prompt struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
	lines    *bufio.Scanner
	// Out is where command output goes, it adds the \r needed in raw mode.
	Out io.Writer
}

// Open opens stdin as a terminal, do `defer p.Close()`
// to restore the terminal to its original state upon exit.
// When stdin isn't a terminal (pipe, file) lines are read as is.
func Open() (*Prompt, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		p := New(os.Stdin, os.Stdout)
		p.fd = fd
		return p, nil
	}
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stderr}
	p := &Prompt{
		fd:   fd,
		term: term.NewTerminal(rw, ""),
		Out:  &CRLFWriter{Out: os.Stdout},
	}
	var err error
	p.oldState, err = term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	p.term.SetBracketedPasteMode(true)
	return p, nil
}

// New returns a non interactive prompt reading lines from r and writing output to w.
func New(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{fd: -1, lines: bufio.NewScanner(r), Out: w}
}

// IsTerminal is true when the prompt is interactive (raw mode line editing).
func (p *Prompt) IsTerminal() bool {
	return p.term != nil
}

// LoggerSetup makes the fortio logger output play nice with the prompt.
func (p *Prompt) LoggerSetup() {
	if !p.IsTerminal() {
		return
	}
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	log.SetOutput(p.term)
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

// Close restores the terminal state, it is safe to call more than once.
func (p *Prompt) Close() error {
	if p.oldState == nil {
		return nil
	}
	p.term.SetPrompt("")
	err := term.Restore(p.fd, p.oldState)
	p.oldState = nil
	log.SetOutput(os.Stderr)
	return err
}

// ReadLine returns the next line, io.EOF at the end of input (or ^D).
func (p *Prompt) ReadLine() (string, error) {
	if p.term == nil {
		if p.lines.Scan() {
			return p.lines.Text(), nil
		}
		if err := p.lines.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	c, err := p.term.ReadLine()
	// Not an error, it marks pasted content (which skips autocomplete).
	if errors.Is(err, term.ErrPasteIndicator) {
		return c, nil
	}
	return c, err
}

// SetPrompt changes the prompt, no-op when not interactive.
func (p *Prompt) SetPrompt(s string) {
	if p.term != nil {
		p.term.SetPrompt(s)
	}
}

// SetCompletions enables tab completion of the first word of the line out of words.
func (p *Prompt) SetCompletions(words []string) {
	if p.term == nil {
		return
	}
	p.term.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}
		return Complete(words, line, pos)
	}
}

// Complete extends the first word of line, when the cursor is at its end, to the
// longest common prefix of the matching words.
func Complete(words []string, line string, pos int) (string, int, bool) {
	if pos != len(line) || strings.ContainsRune(line, ' ') {
		return "", 0, false
	}
	var matches []string
	for _, w := range words {
		if strings.HasPrefix(w, line) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return "", 0, false
	}
	if len(matches) == 1 {
		res := matches[0] + " "
		return res, len(res), true
	}
	slices.Sort(matches)
	first, last := matches[0], matches[len(matches)-1]
	i := 0
	for i < len(first) && first[i] == last[i] {
		i++
	}
	if i == len(line) {
		return "", 0, false
	}
	return first[:i], i, true
}
