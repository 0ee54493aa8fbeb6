// Package rank draws the radial rank indicator placed beside the stat rows.
//
// The indicator is a rim circle, a progress arc and a center label. The arc
// length is driven by CSS: the arc's stroke-dashoffset animates from
// [DashOffset](0) to [DashOffset](progress), where progress is 100 minus the
// percentile computed by the stats source.
package rank

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/statcard/pkg/card/icons"
	"github.com/matzehuels/statcard/pkg/card/layout"
	"github.com/matzehuels/statcard/pkg/svg"
)

// Radius of the progress circle.
const Radius = 40.0

// Icon styles for the center of the circle.
const (
	IconDefault    = "default"
	IconGitHub     = "github"
	IconPercentile = "percentile"
)

// Rank is the externally computed rank of a user.
type Rank struct {
	Level      string  `toml:"level" json:"level" bson:"level"`
	Percentile float64 `toml:"percentile" json:"percentile" bson:"percentile"`
}

// Progress returns 100 - Percentile clamped to [0, 100].
func (r Rank) Progress() float64 {
	return clamp(100 - r.Percentile)
}

// Circumference of the progress circle.
func Circumference() float64 {
	return math.Pi * Radius * 2
}

// DashOffset returns the stroke-dashoffset that shows progress percent of
// the arc. Progress is clamped to [0, 100].
func DashOffset(progress float64) float64 {
	return ((100 - clamp(progress)) / 100) * Circumference()
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

// Glyphs looks up icon path markup by name.
type Glyphs interface {
	Glyph(name string) string
}

// Params configures [Circle].
type Params struct {
	Rank      Rank
	IconStyle string  // IconDefault, IconGitHub or IconPercentile
	X         float64 // horizontal translation of the circle group
	Height    float64 // card height; the circle is centered in it
	Glyphs    Glyphs  // nil uses icons.Octicons
}

// Circle builds the rank indicator fragment.
func Circle(p Params) layout.Fragment {
	return svg.El("g",
		svg.Attr("data-testid", "rank-circle"),
		svg.Attr("transform", fmt.Sprintf("translate(%s, %s)", svg.FormatNum(p.X), svg.FormatNum(p.Height/2-50))),
		svg.El("circle", svg.Attr("class", "rank-circle-rim"), svg.Attr("cx", "-10"), svg.Attr("cy", "8"), svg.Num("r", Radius)),
		svg.El("circle", svg.Attr("class", "rank-circle"), svg.Attr("cx", "-10"), svg.Attr("cy", "8"), svg.Num("r", Radius)),
		svg.El("g", svg.Attr("class", "rank-text"), icon(p)),
	)
}

func icon(p Params) svg.Node {
	switch strings.ToLower(p.IconStyle) {
	case IconGitHub:
		g := p.Glyphs
		if g == nil {
			g = icons.Octicons
		}
		return svg.El("svg",
			svg.Attr("x", "-38"), svg.Attr("y", "-30"),
			svg.Attr("height", "66"), svg.Attr("width", "66"),
			svg.Attr("aria-hidden", "true"),
			svg.Attr("viewBox", "0 0 16 16"),
			svg.Attr("version", "1.1"),
			svg.Attr("data-view-component", "true"),
			svg.Attr("data-testid", "github-rank-icon"),
			svg.Raw(g.Glyph(icons.GitHub)),
		)
	case IconPercentile:
		return svg.Group{
			svg.El("text",
				svg.Attr("x", "-5"), svg.Attr("y", "-12"),
				svg.Attr("alignment-baseline", "central"), svg.Attr("dominant-baseline", "central"),
				svg.Attr("text-anchor", "middle"),
				svg.Attr("data-testid", "rank-top-header"),
				svg.Attr("class", "rank-percentile-header"),
				svg.Text("Top"),
			),
			svg.El("text",
				svg.Attr("x", "-5"), svg.Attr("y", "12"),
				svg.Attr("alignment-baseline", "central"), svg.Attr("dominant-baseline", "central"),
				svg.Attr("text-anchor", "middle"),
				svg.Attr("data-testid", "rank-percentile-text"),
				svg.Attr("class", "rank-percentile-text"),
				svg.Text(fmt.Sprintf("%.1f%%", p.Rank.Percentile)),
			),
		}
	default:
		return svg.El("text",
			svg.Attr("x", "-5"), svg.Attr("y", "3"),
			svg.Attr("alignment-baseline", "central"), svg.Attr("dominant-baseline", "central"),
			svg.Attr("text-anchor", "middle"),
			svg.Attr("data-testid", "level-rank-icon"),
			svg.Text(p.Rank.Level),
		)
	}
}

// TranslateX returns the horizontal position of the circle for a card of
// the given width. With rows the circle sits right of the value column and
// drifts right as the card grows; alone it is centered.
func TranslateX(width float64, hasRows, showIcons bool) float64 {
	if !hasRows {
		return width/2 + 10
	}
	iconWidth := 0.0
	if showIcons {
		iconWidth = layout.IconWidth
	}
	minX := layout.RankCardMinWidth + iconWidth - 70
	minCard := layout.RankCardMinWidth + iconWidth
	if width > layout.RankCardDefaultWidth {
		return minX + (layout.RankCardDefaultWidth-minCard)/2 + width - layout.RankCardDefaultWidth
	}
	return minX + (width-minCard)/2
}
