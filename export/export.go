// Package export renders a color as source code or markup for various
// languages, frameworks and terminals.
package export // import "fortio.org/pigment/export"

import (
	"fmt"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Target output format.
type Target string

const (
	Hex      Target = "hex"
	RGB      Target = "rgb"
	RGBA     Target = "rgba"
	HSL      Target = "hsl"
	HSV      Target = "hsv"
	HWB      Target = "hwb"
	CMYK     Target = "cmyk"
	Lab      Target = "lab"
	LCH      Target = "lch"
	Oklab    Target = "oklab"
	Oklch    Target = "oklch"
	CSSVar   Target = "css-var"
	SCSS     Target = "scss"
	Swift    Target = "swift"
	SwiftUI  Target = "swiftui"
	ObjC     Target = "objc"
	Kotlin   Target = "kotlin"
	Compose  Target = "compose"
	Android  Target = "android"
	Flutter  Target = "flutter"
	Java     Target = "java"
	CSharp   Target = "csharp"
	Tailwind Target = "tailwind"
	ANSI     Target = "ansi"
	ANSIBg   Target = "ansi-bg"
	ANSI256  Target = "ansi256"
)

var targets = []Target{
	Hex, RGB, RGBA, HSL, HSV, HWB, CMYK, Lab, LCH, Oklab, Oklch,
	CSSVar, SCSS, Swift, SwiftUI, ObjC, Kotlin, Compose, Android, Flutter, Java, CSharp,
	Tailwind, ANSI, ANSIBg, ANSI256,
}

// Targets lists every supported target.
func Targets() []Target {
	return append([]Target(nil), targets...)
}

// ParseTarget accepts the target names, case insensitive.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range targets {
		if k == t {
			return t, nil
		}
	}
	return Hex, fmt.Errorf("unknown export target %q, valid targets: %s", s, targetList())
}

func targetList() string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// DefaultName is the variable or resource name used by [Format].
const DefaultName = "color"

// Format renders c for the target. Unknown targets fall back to [Hex].
func Format(c colorspace.RGB, t Target) string {
	return FormatNamed(c, t, DefaultName)
}

// FormatNamed is [Format] with the variable name used by css-var, scss and android.
func FormatNamed(c colorspace.RGB, t Target, name string) string {
	if name == "" {
		name = DefaultName
	}
	hex := c.Hex()
	upper := strings.ToUpper(hex[1:])
	r, g, b := unit(c.R), unit(c.G), unit(c.B)
	switch t {
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case RGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, 1)", c.R, c.G, c.B)
	case HSL:
		return c.HSL().String()
	case HSV:
		v := c.HSV().Rounded()
		return fmt.Sprintf("hsv(%g, %g%%, %g%%)", v.H, v.S, v.V)
	case HWB:
		v := c.HWB().Rounded()
		return fmt.Sprintf("hwb(%g %g%% %g%%)", v.H, v.W, v.B)
	case CMYK:
		v := c.CMYK().Rounded()
		return fmt.Sprintf("cmyk(%g%%, %g%%, %g%%, %g%%)", v.C, v.M, v.Y, v.K)
	case Lab:
		v := c.Lab().Rounded()
		return fmt.Sprintf("lab(%g%% %g %g)", v.L, v.A, v.B)
	case LCH:
		v := c.LCH().Rounded()
		return fmt.Sprintf("lch(%g%% %g %g)", v.L, v.C, v.H)
	case Oklab:
		v := c.Oklab().Rounded()
		return fmt.Sprintf("oklab(%g %g %g)", v.L, v.A, v.B)
	case Oklch:
		v := c.Oklch().Rounded()
		return fmt.Sprintf("oklch(%g %g %g)", v.L, v.C, v.H)
	case CSSVar:
		return fmt.Sprintf("--%s: %s;", name, hex)
	case SCSS:
		return fmt.Sprintf("$%s: %s;", name, hex)
	case Swift:
		return fmt.Sprintf("UIColor(red: %s, green: %s, blue: %s, alpha: 1.0)", r, g, b)
	case SwiftUI:
		return fmt.Sprintf("Color(red: %s, green: %s, blue: %s)", r, g, b)
	case ObjC:
		return fmt.Sprintf("[UIColor colorWithRed:%s green:%s blue:%s alpha:1.0]", r, g, b)
	case Kotlin, Compose, Flutter:
		return "Color(0xFF" + upper + ")"
	case Android:
		return fmt.Sprintf("<color name=%q>#FF%s</color>", name, upper)
	case Java:
		return fmt.Sprintf("new Color(%d, %d, %d)", c.R, c.G, c.B)
	case CSharp:
		return fmt.Sprintf("Color.FromArgb(%d, %d, %d)", c.R, c.G, c.B)
	case Tailwind:
		return "bg-[" + hex + "]"
	case ANSI:
		return Foreground(c)
	case ANSIBg:
		return Background(c)
	case ANSI256:
		return fmt.Sprintf("\033[38;5;%dm", ANSI256Index(c))
	default:
		return "#" + upper
	}
}

func unit(v uint8) string {
	return fmt.Sprintf("%.3f", float64(v)/255)
}

// CSS returns every CSS color function form of c, hex first.
func CSS(c colorspace.RGB) []string {
	res := make([]string, 0, 8)
	res = append(res, c.Hex())
	for _, t := range []Target{RGB, HSL, HWB, Lab, LCH, Oklab, Oklch} {
		res = append(res, Format(c, t))
	}
	return res
}

// All formats c for every target, in [Targets] order.
func All(c colorspace.RGB) map[Target]string {
	res := make(map[Target]string, len(targets))
	for _, t := range targets {
		res[t] = Format(c, t)
	}
	return res
}
