package cli

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/pigment"
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/cvd"
	"fortio.org/pigment/derive"
	"fortio.org/pigment/export"
	"fortio.org/pigment/internal/pixels"
	"fortio.org/pigment/internal/table"
	"fortio.org/pigment/palette"
	"fortio.org/pigment/perceptual"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (r *Runner) contrastCell(c pigment.Contrast, fg, bg colorspace.RGB) string {
	s := fmt.Sprintf("%.2f:1 %s, Lc %.1f", c.Ratio, c.Level, c.APCA)
	if r.Swatch {
		s += " " + r.Color.Sample(" Aa ", fg, bg)
	}
	return s
}

func (r *Runner) info(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	d := pigment.Describe(c)
	rows := [][]string{{"hex", r.swatch(c)}}
	for _, t := range []export.Target{
		export.RGB, export.HSL, export.HSV, export.HWB, export.CMYK,
		export.Lab, export.LCH, export.Oklab, export.Oklch,
	} {
		rows = append(rows, []string{string(t), export.Format(c, t)})
	}
	rows = append(rows,
		[]string{"name", d.Name},
		[]string{"tailwind", d.Tailwind},
		[]string{"pantone", orDash(d.Pantone)},
		[]string{"ral", orDash(d.RAL)},
		[]string{"ncs", orDash(d.NCS)},
		[]string{"temperature", fmt.Sprintf("%s (%gK)", d.Temperature.Class, d.Temperature.Kelvin)},
		[]string{"luminance", strconv.FormatFloat(d.Luminance, 'f', 4, 64)},
		[]string{"on white", r.contrastCell(d.OnWhite, c, colorspace.White)},
		[]string{"on black", r.contrastCell(d.OnBlack, c, colorspace.Black)},
		[]string{"best text", d.BestText.Hex()},
	)
	return r.card(rows)
}

func (r *Runner) convert(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	targets := r.Targets
	if len(args) > 1 {
		targets = nil
		for _, a := range args[1:] {
			t, err := export.ParseTarget(a)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		targets = export.Targets()
	}
	value := func(t export.Target) string {
		v := export.Format(c, t)
		if strings.HasPrefix(string(t), "ansi") {
			return strconv.Quote(v)
		}
		return v
	}
	if len(targets) == 1 {
		_, err = fmt.Fprintln(r.Out, value(targets[0]))
		return err
	}
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, []string{string(t), value(t)})
	}
	return r.keyValues(rows)
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func fontSize(px int, ok bool) string {
	if !ok {
		return "not legible"
	}
	return fmt.Sprintf("%dpx", px)
}

func (r *Runner) contrast(args []string) error {
	cs, err := r.colors(args)
	if err != nil {
		return err
	}
	fg, bg := cs[0], cs[1]
	ratio := perceptual.WCAGContrast(fg, bg)
	lc := perceptual.APCA(fg, bg)
	rows := [][]string{
		{"colors", r.swatch(fg) + " on " + r.swatch(bg)},
		{"wcag", fmt.Sprintf("%.2f:1 %s", ratio, perceptual.WCAGLevel(ratio))},
		{"apca", fmt.Sprintf("Lc %.1f", lc)},
		{"min size", fmt.Sprintf("wcag %s, apca %s",
			fontSize(perceptual.MinFontSizeWCAG(ratio)), fontSize(perceptual.MinFontSizeAPCA(lc)))},
		{fmt.Sprintf("ratio >= %g", r.Ratio), passFail(ratio >= r.Ratio)},
		{fmt.Sprintf("|Lc| >= %g", r.MinLc), passFail(lc >= r.MinLc || -lc >= r.MinLc)},
	}
	if r.Swatch {
		rows = append(rows, []string{"sample", r.Color.Sample(" The quick brown fox ", fg, bg)})
	}
	return r.card(rows)
}

func (r *Runner) suggest(args []string) error {
	cs, err := r.colors(args)
	if err != nil {
		return err
	}
	fg, bg := cs[0], cs[1]
	s, ok := perceptual.Suggest(bg, fg, perceptual.SuggestOptions{Target: r.Ratio, Prefer: r.Prefer})
	if !ok {
		log.Warnf("No %s lightness of %s reaches %g:1 on %s, falling back to %s",
			r.Prefer, fg.Hex(), r.Ratio, bg.Hex(), s.Hex())
	}
	r.history = r.history.Push(s)
	_, err = fmt.Fprintf(r.Out, "%s %.2f:1\n", r.swatch(s), perceptual.WCAGContrast(s, bg))
	return err
}

func (r *Runner) harmony(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	if len(args) == 2 {
		k, err := derive.ParseKind(args[1])
		if err != nil {
			return err
		}
		return r.list(derive.Harmony(c, k, r.Offset))
	}
	set := derive.Harmonies(c, r.Offset)
	rows := make([][]string, 0, len(derive.Kinds))
	for _, k := range derive.Kinds {
		colors := set.Get(k)
		cell := hexes(colors)
		if r.Swatch {
			var sb strings.Builder
			for _, hc := range colors {
				sb.WriteString(r.Color.Swatch(hc, 3))
			}
			cell = sb.String() + " " + cell
		}
		rows = append(rows, []string{k.String(), cell})
	}
	return r.keyValues(rows)
}

func (r *Runner) tints(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	return r.list(derive.Tints(c, r.N))
}

func (r *Runner) shades(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	return r.list(derive.Shades(c, r.N))
}

func (r *Runner) mix(args []string) error {
	cs, err := r.colors(args[:2])
	if err != nil {
		return err
	}
	t := 0.5
	if len(args) == 3 {
		t, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid mix amount %q: %w", args[2], err)
		}
	}
	m := derive.Mix(cs[0], cs[1], t, r.Space)
	r.history = r.history.Push(m)
	_, err = fmt.Fprintln(r.Out, r.swatch(m))
	return err
}

func (r *Runner) scale(args []string) error {
	cs, err := r.colors(args)
	if err != nil {
		return err
	}
	return r.list(derive.Scale(cs[0], cs[1], r.Steps, r.Space))
}

func (r *Runner) blend(args []string) error {
	cs, err := r.colors(args)
	if err != nil {
		return err
	}
	if r.Mode != "" {
		m, err := derive.ParseMode(r.Mode)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.Out, r.swatch(derive.Blend(cs[0], cs[1], m)))
		return err
	}
	rows := make([][]string, 0, len(derive.Modes))
	for _, m := range derive.Modes {
		rows = append(rows, []string{m.String(), r.swatch(derive.Blend(cs[0], cs[1], m))})
	}
	return r.keyValues(rows)
}

func (r *Runner) blind(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	if len(args) == 2 {
		d, err := cvd.ParseDeficiency(args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.Out, r.swatch(cvd.Simulate(c, d)))
		return err
	}
	rows := [][]string{{"normal", r.swatch(c)}}
	for _, s := range cvd.SimulateAll(c) {
		rows = append(rows, []string{s.Deficiency.String(), r.swatch(s.Color)})
	}
	return r.keyValues(rows)
}

// loadPalette resolves -palette: a built-in table name or a yaml file.
func loadPalette(name string) ([]palette.Entry, error) {
	if t, ok := palette.Table(name); ok {
		return t, nil
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return loadPaletteFile(name)
	}
	return nil, fmt.Errorf("unknown palette %q, must be a yaml file or one of: %s",
		name, strings.Join(palette.TableNames(), ", "))
}

var brandTables = map[string]bool{"pantone": true, "ral": true, "ncs": true}

// nearestRow is the closest entry, no match beyond cutoff (when > 0).
func (r *Runner) nearestRow(c colorspace.RGB, name string, entries []palette.Entry, cutoff float64) []string {
	e, d, ok := palette.Nearest(c, entries)
	if !ok || (cutoff > 0 && d > cutoff) {
		return []string{name, "-", "", ""}
	}
	ec, _ := e.RGB()
	return []string{name, e.Name, r.swatch(ec), strconv.FormatFloat(d, 'f', 1, 64)}
}

func (r *Runner) nearest(args []string) error {
	c, err := r.color(args[0])
	if err != nil {
		return err
	}
	align := []table.Alignment{table.Left, table.Left, table.Left, table.Right}
	if r.Palette != "" {
		entries, err := loadPalette(r.Palette)
		if err != nil {
			return err
		}
		return r.writeTable(align, [][]string{r.nearestRow(c, r.Palette, entries, 0)})
	}
	names := palette.TableNames()
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		cutoff := 0.
		if brandTables[n] {
			cutoff = palette.BrandCutoff
		}
		rows = append(rows, r.nearestRow(c, n, palette.Tables[n], cutoff))
	}
	return r.writeTable(align, rows)
}

func (r *Runner) gradient(args []string) error {
	cs, err := r.colors(args)
	if err != nil {
		return err
	}
	g := derive.NewGradient(r.Kind, r.Angle, cs...)
	if _, err = fmt.Fprintln(r.Out, g.CSS()); err != nil {
		return err
	}
	if !r.Swatch {
		return nil
	}
	var sb strings.Builder
	for _, c := range g.Sample(max(2, r.Width/2), r.Space) {
		sb.WriteString(r.Color.Swatch(c, 1))
	}
	_, err = fmt.Fprintln(r.Out, sb.String())
	return err
}

func (r *Runner) image(args []string) error {
	img, err := pixels.ReadImage(args[0])
	if err != nil {
		return err
	}
	log.Infof("%s: %s %dx%d", args[0], img.Format, img.Width, img.Height)
	dom := pixels.Dominant(img.RGBA, r.N)
	if len(dom) == 0 {
		return fmt.Errorf("%s: no opaque pixels", args[0])
	}
	rows := make([][]string, 0, len(dom))
	for _, s := range dom {
		r.history = r.history.Push(s.Color)
		rows = append(rows, []string{r.swatch(s.Color), fmt.Sprintf("%.1f%%", 100*s.Share), palette.NearestName(s.Color)})
	}
	if err = r.writeTable([]table.Alignment{table.Left, table.Right, table.Left}, rows); err != nil {
		return err
	}
	if !r.Swatch {
		return nil
	}
	// 2 pixels per cell vertically.
	preview := pixels.Fit(img.RGBA, r.Width, 2*r.Height)
	return pixels.Render(r.Out, preview, r.Color)
}
