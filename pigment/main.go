// pigment converts, compares and derives colors from the command line.
package main

import (
	"flag"
	"os"
	"strings"

	clishell "fortio.org/cli"
	"fortio.org/log"
	"fortio.org/pigment/derive"
	"fortio.org/pigment/export"
	"fortio.org/pigment/perceptual"
	"fortio.org/pigment/pigment/cli"
	"golang.org/x/term"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	def := cli.DefaultConfig()
	spaceFlag := flag.String("space", "rgb", "Interpolation `space` for mix, scale and gradient: rgb, lab or oklch")
	ratio := flag.Float64("ratio", def.Ratio, "WCAG contrast `ratio` target for contrast and suggest")
	minLc := flag.Float64("min", def.MinLc, "APCA minimum `Lc` magnitude for contrast")
	prefer := flag.String("prefer", "any", "Lightness `direction` for suggest: any, lighter or darker")
	steps := flag.Int("steps", def.Steps, "Number of colors for scale")
	n := flag.Int("n", def.N, "Number of tints, shades or dominant image colors")
	offset := flag.Float64("offset", 0, "Hue offset in `degrees` applied to the whole harmony")
	mode := flag.String("mode", "", "Blend `mode` for blend, all modes when empty")
	targets := flag.String("target", "", "Comma separated export `targets` for convert, all when empty")
	pal := flag.String("palette", "",
		"Palette `NAME` (generic, tailwind, pantone, ral, ncs) or FILE.yaml for nearest, all built-in tables when empty")
	kind := flag.String("kind", "linear", "Gradient `kind`: linear, radial or conic")
	angle := flag.Float64("angle", def.Angle, "Gradient angle in `degrees`")
	swatch := flag.Bool("swatch", false, "Show colored swatches even when stdout isn't a terminal")
	trueColor := flag.Bool("truecolor", cli.TrueColorTerm(),
		"Use 24 bit colors for swatches instead of the 256 colors palette (default from COLORTERM)")
	timing := flag.Bool("timing", false, "Log how long each command takes")
	clishell.MinArgs = 1
	clishell.MaxArgs = -1
	clishell.ArgsHelp = "command args...\nwhere command is one of:\n" + cli.Usage()
	clishell.Main()
	if *steps < 1 || *n < 1 {
		return log.FErrf("Invalid -steps (%d) or -n (%d), must be at least 1", *steps, *n)
	}
	cfg := def
	var err error
	if cfg.Space, err = derive.ParseSpace(*spaceFlag); err != nil {
		return log.FErrf("%v", err)
	}
	if cfg.Prefer, err = perceptual.ParseDirection(*prefer); err != nil {
		return log.FErrf("%v", err)
	}
	if cfg.Kind, err = derive.ParseGradientKind(*kind); err != nil {
		return log.FErrf("%v", err)
	}
	if *mode != "" {
		if _, err = derive.ParseMode(*mode); err != nil {
			return log.FErrf("%v", err)
		}
	}
	for _, t := range strings.Split(*targets, ",") {
		if strings.TrimSpace(t) == "" {
			continue
		}
		target, err := export.ParseTarget(t)
		if err != nil {
			return log.FErrf("%v", err)
		}
		cfg.Targets = append(cfg.Targets, target)
	}
	cfg.Ratio = *ratio
	cfg.MinLc = *minLc
	cfg.Steps = *steps
	cfg.N = *n
	cfg.Offset = *offset
	cfg.Mode = *mode
	cfg.Palette = *pal
	cfg.Angle = *angle
	cfg.Timing = *timing
	cfg.Color = export.ColorOutput{TrueColor: *trueColor}
	fdOut := int(os.Stdout.Fd())
	cfg.Swatch = *swatch || term.IsTerminal(fdOut)
	if w, h, err := term.GetSize(fdOut); err == nil {
		cfg.Width, cfg.Height = w, max(1, h-2)
	}
	log.Debugf("Config: %+v", cfg)
	r := cli.NewRunner(cfg, os.Stdout)
	if err = r.Run(flag.Args()); err != nil {
		return log.FErrf("%v", err)
	}
	return 0
}
