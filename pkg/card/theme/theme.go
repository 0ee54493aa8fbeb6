// Package theme holds the named color palettes and resolves the colors a
// card is drawn with.
//
// Palettes are declared in an embedded TOML document. [Resolve] combines a
// palette with explicit per-color overrides; overrides always win when they
// are valid, and anything missing or invalid falls back to the palette and
// then to the default palette.
package theme

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/statcard/pkg/errors"
)

// Default is the palette used when no theme, or an unknown theme, is requested.
const Default = "default"

//go:embed themes.toml
var themesTOML []byte

// Palette is a named set of bare hex colors.
type Palette struct {
	TitleColor  string `toml:"title_color"`
	IconColor   string `toml:"icon_color"`
	TextColor   string `toml:"text_color"`
	BgColor     string `toml:"bg_color"`
	BorderColor string `toml:"border_color"`
	RingColor   string `toml:"ring_color"`
}

var (
	catalog     map[string]Palette
	catalogErr  error
	catalogOnce sync.Once
)

// Catalog returns all palettes keyed by name.
// The embedded document is parsed once; a parse failure panics because it
// can only come from a broken build.
func Catalog() map[string]Palette {
	catalogOnce.Do(func() {
		catalog, catalogErr = Parse(themesTOML)
	})
	if catalogErr != nil {
		panic(catalogErr)
	}
	return catalog
}

// Parse decodes a TOML palette document and checks that every palette has
// valid colors.
func Parse(data []byte) (map[string]Palette, error) {
	out := make(map[string]Palette)
	if _, err := toml.Decode(string(data), &out); err != nil {
		return nil, fmt.Errorf("decode themes: %w", err)
	}
	for name, p := range out {
		for _, c := range []string{p.TitleColor, p.IconColor, p.TextColor, p.BgColor} {
			if !errors.IsHexColor(c) {
				return nil, fmt.Errorf("theme %q: invalid color %q", name, c)
			}
		}
		for _, c := range []string{p.BorderColor, p.RingColor} {
			if c != "" && !errors.IsHexColor(c) {
				return nil, fmt.Errorf("theme %q: invalid color %q", name, c)
			}
		}
	}
	if _, ok := out[Default]; !ok {
		return nil, fmt.Errorf("themes: missing %q palette", Default)
	}
	return out, nil
}

// Names returns the sorted palette names.
func Names() []string {
	c := Catalog()
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the palette for name and whether it exists.
func Lookup(name string) (Palette, bool) {
	p, ok := Catalog()[name]
	return p, ok
}

// Overrides are explicit per-color values given by the caller. Values are
// bare hex colors; BgColor may also be a gradient "angle,hex,hex[,...]".
type Overrides struct {
	TitleColor  string
	IconColor   string
	TextColor   string
	BgColor     string
	BorderColor string
	RingColor   string
}

// Gradient is a linear gradient background.
type Gradient struct {
	Angle string   // rotation in degrees, as given
	Stops []string // '#'-prefixed colors
}

// Colors is the resolved color set of one card. Every value except BgColor
// is a '#'-prefixed color. When Gradient is non-nil the background uses it
// and BgColor holds the fill reference.
type Colors struct {
	TitleColor  string
	IconColor   string
	TextColor   string
	BgColor     string
	BorderColor string
	RingColor   string
	Gradient    *Gradient
}

// GradientFill is the fill reference used for gradient backgrounds.
const GradientFill = "url(#gradient)"

// Resolve computes the colors for a theme name plus overrides.
func Resolve(name string, o Overrides) Colors {
	def, _ := Lookup(Default)
	sel, ok := Lookup(name)
	if !ok {
		sel = def
	}

	defaultBorder := first(sel.BorderColor, def.BorderColor)

	c := Colors{
		TitleColor:  pick("#"+def.TitleColor, o.TitleColor, sel.TitleColor),
		IconColor:   pick("#"+def.IconColor, o.IconColor, sel.IconColor),
		TextColor:   pick("#"+def.TextColor, o.TextColor, sel.TextColor),
		BorderColor: pick("#"+defaultBorder, o.BorderColor, defaultBorder),
	}
	c.RingColor = pick(c.TitleColor, o.RingColor, sel.RingColor)

	bg := o.BgColor
	if !errors.IsHexColor(bg) && !errors.IsGradient(bg) {
		bg = sel.BgColor
	}
	if errors.IsGradient(bg) {
		parts := strings.Split(bg, ",")
		g := &Gradient{Angle: parts[0]}
		for _, p := range parts[1:] {
			g.Stops = append(g.Stops, "#"+p)
		}
		c.Gradient = g
		c.BgColor = GradientFill
	} else {
		c.BgColor = pick("#"+def.BgColor, bg)
	}
	return c
}

// pick returns the first valid hex candidate with a '#' prefix, else fallback.
func pick(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if errors.IsHexColor(c) {
			return "#" + c
		}
	}
	return fallback
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
