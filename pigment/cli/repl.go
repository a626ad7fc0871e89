package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"fortio.org/log"
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/internal/prompt"
	"fortio.org/pigment/palette"
)

// Interactive only commands.
var replCommands = []string{"exit", "help", "history", "quit", "save"}

func (r *Runner) repl(_ []string) error {
	p, err := prompt.Open()
	if err != nil {
		return fmt.Errorf("error opening terminal: %w", err)
	}
	defer p.Close()
	p.LoggerSetup()
	p.SetCompletions(append(CommandNames(), replCommands...))
	out := r.Out
	defer func() { r.Out = out }()
	return r.Loop(p)
}

func (r *Runner) promptString() string {
	if c, ok := r.history.Last(); ok {
		return "pigment " + c.Hex() + "> "
	}
	return "pigment> "
}

// Loop reads and executes commands from p until EOF or quit. A line that is just
// a color shows its info; invalid colors keep the previous one.
func (r *Runner) Loop(p *prompt.Prompt) error {
	r.interactive = true
	defer func() { r.interactive = false }()
	r.Out = p.Out
	for {
		p.SetPrompt(r.promptString())
		line, err := p.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("EOF received, exiting.")
			return nil
		}
		if err != nil {
			return err
		}
		args := SplitArgs(line)
		if len(args) == 0 {
			continue
		}
		name := strings.ToLower(args[0])
		switch name {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(r.Out, Usage())
			fmt.Fprintln(r.Out, "  history  recent colors, . is the last one\n  save     NAME [FILE.yaml] save the recent colors as a palette")
			continue
		case "history":
			r.printHistory()
			continue
		case "save":
			if err = r.save(args[1:]); err != nil {
				log.Errf("%v", err)
			}
			continue
		case "repl":
			log.Warnf("Already in interactive mode")
			continue
		}
		if _, isCmd := commands[name]; !isCmd && len(args) == 1 {
			args = []string{"info", args[0]}
		}
		if err = r.Run(args); err != nil {
			log.Errf("%v", err)
		}
	}
}

func (r *Runner) printHistory() {
	for i, h := range r.history.Colors() {
		c, _ := colorspace.ParseHex(h)
		fmt.Fprintf(r.Out, "%2d %s\n", i+1, r.swatch(c))
	}
}

// save writes the history, oldest first, as a saved palette.
func (r *Runner) save(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: save NAME [FILE.yaml]")
	}
	if r.history.Len() == 0 {
		return errors.New("no colors to save yet")
	}
	colors := r.history.Colors()
	slices.Reverse(colors)
	s := palette.Saved{
		ID:        time.Now().Unix(),
		Name:      args[0],
		Colors:    colors,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if len(args) == 1 {
		return writeSaved(r.Out, s)
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err = writeSaved(f, s); err != nil {
		f.Close()
		return err
	}
	log.Infof("Saved %d colors to %s", len(colors), args[1])
	return f.Close()
}

// SplitArgs splits a command line on spaces, keeping parenthesized groups
// such as rgb(59, 130, 246) together.
func SplitArgs(line string) []string {
	var res []string
	var cur strings.Builder
	depth := 0
	for _, ch := range line {
		switch {
		case ch == '(':
			depth++
		case ch == ')' && depth > 0:
			depth--
		case (ch == ' ' || ch == '\t') && depth == 0:
			if cur.Len() > 0 {
				res = append(res, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(ch)
	}
	if cur.Len() > 0 {
		res = append(res, cur.String())
	}
	return res
}
