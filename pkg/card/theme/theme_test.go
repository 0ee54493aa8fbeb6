package theme

import (
	"slices"
	"testing"
)

func TestCatalogHasDefault(t *testing.T) {
	p, ok := Lookup(Default)
	if !ok {
		t.Fatal("default palette missing")
	}
	if p.TitleColor != "2f80ed" {
		t.Errorf("default title = %q, want 2f80ed", p.TitleColor)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Error("Names() should be sorted")
	}
	for _, want := range []string{"default", "dark", "radical", "transparent"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	doc := `
[default]
title_color = "2f80ed"
icon_color = "4c71f2"
text_color = "434d58"
bg_color = "nothex"
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Parse() should reject invalid colors")
	}
}

func TestParseRequiresDefault(t *testing.T) {
	doc := `
[dark]
title_color = "fff"
icon_color = "79ff97"
text_color = "9f9f9f"
bg_color = "151515"
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Parse() should require a default palette")
	}
}

func TestResolveDefault(t *testing.T) {
	c := Resolve("", Overrides{})
	want := Colors{
		TitleColor:  "#2f80ed",
		IconColor:   "#4c71f2",
		TextColor:   "#434d58",
		BgColor:     "#fffefe",
		BorderColor: "#e4e2e2",
		RingColor:   "#2f80ed",
	}
	if c != want {
		t.Errorf("Resolve() = %+v\nwant %+v", c, want)
	}
}

func TestResolveTheme(t *testing.T) {
	c := Resolve("dark", Overrides{})
	if c.TitleColor != "#fff" || c.BgColor != "#151515" {
		t.Errorf("dark colors = %+v", c)
	}
	if c.BorderColor != "#e4e2e2" {
		t.Errorf("border should fall back to default, got %q", c.BorderColor)
	}
	if c.RingColor != c.TitleColor {
		t.Errorf("ring should fall back to title, got %q", c.RingColor)
	}
}

func TestResolveUnknownThemeFallsBack(t *testing.T) {
	if got, want := Resolve("no-such-theme", Overrides{}), Resolve(Default, Overrides{}); got != want {
		t.Errorf("unknown theme = %+v, want default %+v", got, want)
	}
}

func TestResolveOverridesWin(t *testing.T) {
	c := Resolve("dark", Overrides{
		TitleColor:  "ff0000",
		IconColor:   "00ff00",
		TextColor:   "0000ff",
		BgColor:     "123456",
		BorderColor: "abcdef",
		RingColor:   "fedcba",
	})
	want := Colors{
		TitleColor:  "#ff0000",
		IconColor:   "#00ff00",
		TextColor:   "#0000ff",
		BgColor:     "#123456",
		BorderColor: "#abcdef",
		RingColor:   "#fedcba",
	}
	if c != want {
		t.Errorf("Resolve() = %+v\nwant %+v", c, want)
	}
}

func TestResolveInvalidOverrideFallsBackToTheme(t *testing.T) {
	c := Resolve("dark", Overrides{TitleColor: "red", BgColor: "zzz"})
	if c.TitleColor != "#fff" {
		t.Errorf("TitleColor = %q, want #fff", c.TitleColor)
	}
	if c.BgColor != "#151515" {
		t.Errorf("BgColor = %q, want #151515", c.BgColor)
	}
}

func TestResolveRingFollowsTitleOverride(t *testing.T) {
	c := Resolve("", Overrides{TitleColor: "ff0000"})
	if c.RingColor != "#ff0000" {
		t.Errorf("RingColor = %q, want #ff0000", c.RingColor)
	}
}

func TestResolveGradient(t *testing.T) {
	c := Resolve("", Overrides{BgColor: "90,ff0000,00ff00,0000ff"})
	if c.BgColor != GradientFill {
		t.Errorf("BgColor = %q, want %q", c.BgColor, GradientFill)
	}
	if c.Gradient == nil {
		t.Fatal("Gradient should be set")
	}
	if c.Gradient.Angle != "90" {
		t.Errorf("Angle = %q", c.Gradient.Angle)
	}
	if want := []string{"#ff0000", "#00ff00", "#0000ff"}; !slices.Equal(c.Gradient.Stops, want) {
		t.Errorf("Stops = %v, want %v", c.Gradient.Stops, want)
	}
}
