// Package cli implements the pigment commands: each one parses its color
// arguments, computes with the pigment packages and prints the result.
package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"fortio.org/log"
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/derive"
	"fortio.org/pigment/export"
	"fortio.org/pigment/internal/table"
	"fortio.org/pigment/palette"
	"fortio.org/pigment/perceptual"
	"github.com/loov/hrtime"
)

// Config holds the flag values shared by the commands.
type Config struct {
	Space   derive.Space
	Ratio   float64 // WCAG target for contrast and suggest
	MinLc   float64 // APCA |Lc| target for contrast
	Prefer  perceptual.Direction
	Steps   int
	N       int
	Offset  float64
	Mode    string          // blend mode, all of them when empty
	Targets []export.Target // convert targets, all of them when empty
	Palette string          // nearest: table name or yaml file, every built-in table when empty
	Kind    derive.GradientKind
	Angle   float64
	Swatch  bool // colored swatches next to the values
	Color   export.ColorOutput
	Timing  bool
	// Image preview size in terminal cells.
	Width, Height int
}

// DefaultConfig matches the flag defaults.
func DefaultConfig() Config {
	return Config{
		Ratio:  perceptual.DefaultTarget,
		MinLc:  60,
		Steps:  5,
		N:      5,
		Angle:  90,
		Width:  80,
		Height: 24,
	}
}

// TrueColorTerm guesses 24 bit color support from the COLORTERM environment variable.
func TrueColorTerm() bool {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	return ct == "truecolor" || ct == "24bit"
}

// Runner executes commands, writing results to Out.
type Runner struct {
	Config
	Out         io.Writer
	history     palette.History
	interactive bool
}

func NewRunner(cfg Config, out io.Writer) *Runner {
	return &Runner{Config: cfg, Out: out, history: palette.NewHistory(palette.DefaultHistorySize)}
}

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(r *Runner, args []string) error
}

var commands map[string]command

func init() {
	// set in init as repl refers back to the command table.
	commands = map[string]command{
		"info":     {"COLOR", "every representation, names, contrast and temperature", 1, 1, (*Runner).info},
		"convert":  {"COLOR [TARGET...]", "export formats (-target or all)", 1, -1, (*Runner).convert},
		"contrast": {"FG BG", "WCAG ratio and level, APCA Lc, minimum font sizes", 2, 2, (*Runner).contrast},
		"suggest":  {"FG BG", "closest foreground reaching -ratio against BG", 2, 2, (*Runner).suggest},
		"harmony":  {"COLOR [KIND]", "color harmonies (all kinds when KIND is omitted)", 1, 2, (*Runner).harmony},
		"tints":    {"COLOR", "-n mixes toward white", 1, 1, (*Runner).tints},
		"shades":   {"COLOR", "-n mixes toward black", 1, 1, (*Runner).shades},
		"mix":      {"A B [T]", "mix of A and B at T (default 0.5) in -space", 2, 3, (*Runner).mix},
		"scale":    {"A B", "-steps colors from A to B in -space", 2, 2, (*Runner).scale},
		"blend":    {"BASE TOP", "blend modes (-mode or all)", 2, 2, (*Runner).blend},
		"blind":    {"COLOR [DEFICIENCY]", "color vision deficiency simulations", 1, 2, (*Runner).blind},
		"nearest":  {"COLOR", "nearest named colors (-palette or all tables)", 1, 1, (*Runner).nearest},
		"gradient": {"COLOR COLOR...", "CSS gradient (-kind, -angle) and samples", 2, -1, (*Runner).gradient},
		"image":    {"FILE", "dominant colors (-n) and preview of an image", 1, 1, (*Runner).image},
		"repl":     {"", "interactive mode", 0, 0, (*Runner).repl},
	}
}

// CommandNames is the sorted list of commands.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Usage lists the commands, one per line.
func Usage() string {
	var sb strings.Builder
	for _, n := range CommandNames() {
		c := commands[n]
		fmt.Fprintf(&sb, "  %-8s %-20s %s\n", n, c.usage, c.help)
	}
	sb.WriteString("Colors are hex (#3b82f6 or 3b82f6), rgb(59, 130, 246) or hsl(217, 91%, 60%)\n")
	return sb.String()
}

// Run executes the command args[0] with the remaining arguments.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command, one of: %s", strings.Join(CommandNames(), ", "))
	}
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, one of: %s", args[0], strings.Join(CommandNames(), ", "))
	}
	args = args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("usage: %s %s", name, cmd.usage)
	}
	var start time.Duration
	if r.Timing {
		start = hrtime.Now()
	}
	err := cmd.run(r, args)
	if r.Timing {
		log.Infof("%s took %v", name, hrtime.Since(start))
	}
	return err
}

// color parses a color argument and records it in the history. "." is the
// previous color. In interactive mode an invalid color keeps the previous one.
func (r *Runner) color(arg string) (colorspace.RGB, error) {
	last, hasLast := r.history.Last()
	if arg == "." {
		if !hasLast {
			return colorspace.RGB{}, fmt.Errorf("no previous color for %q", arg)
		}
		return last, nil
	}
	c, ok := colorspace.Parse(arg)
	if ok {
		r.history = r.history.Push(c)
		return c, nil
	}
	if r.interactive && hasLast {
		log.Warnf("Invalid color %q, keeping %s", arg, last.Hex())
		return last, nil
	}
	return colorspace.RGB{}, fmt.Errorf("invalid color %q", arg)
}

func (r *Runner) colors(args []string) ([]colorspace.RGB, error) {
	res := make([]colorspace.RGB, len(args))
	for i, a := range args {
		c, err := r.color(a)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

// swatch is a colored block followed by the hex value.
func (r *Runner) swatch(c colorspace.RGB) string {
	if !r.Swatch {
		return c.Hex()
	}
	return r.Color.Swatch(c, 4) + " " + c.Hex()
}

func (r *Runner) writeTable(alignment []table.Alignment, rows [][]string) error {
	return table.Table{Align: alignment, Spacing: 2}.Write(r.Out, rows)
}

func (r *Runner) keyValues(rows [][]string) error {
	return r.writeTable([]table.Alignment{table.Left, table.Left}, rows)
}

// card is keyValues framed in a box when showing swatches, for the single
// color reports (info and contrast).
func (r *Runner) card(rows [][]string) error {
	t := table.Table{Align: []table.Alignment{table.Left, table.Left}, Spacing: 2, Box: r.Swatch}
	return t.Write(r.Out, rows)
}

func (r *Runner) list(colors []colorspace.RGB) error {
	for _, c := range colors {
		if _, err := fmt.Fprintln(r.Out, r.swatch(c)); err != nil {
			return err
		}
	}
	return nil
}

func hexes(colors []colorspace.RGB) string {
	s := make([]string, len(colors))
	for i, c := range colors {
		s[i] = c.Hex()
	}
	return strings.Join(s, " ")
}
