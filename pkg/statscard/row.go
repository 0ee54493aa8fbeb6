package statscard

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/statcard/pkg/card/format"
	"github.com/matzehuels/statcard/pkg/card/layout"
	"github.com/matzehuels/statcard/pkg/svg"
)

// Row geometry.
const (
	staggerSlot      = 150 // ms between row entrances
	staggerReserved  = 3   // slots taken by the title and border
	rowOriginX       = 25.0
	labelIconX       = 25.0
	valueX           = 120.0
	valueIconX       = 140.0
	rowTextBaselineY = "12.5"
)

// RowParams are the layout inputs of [BuildRow].
type RowParams struct {
	ShowIcons    bool
	Shift        float64 // extra value-column offset, see ValueShift
	Bold         bool
	NumberFormat string
}

// StaggerDelay returns the entrance delay in ms of the row at visible
// index i.
func StaggerDelay(i int) int {
	return (i + staggerReserved) * staggerSlot
}

// ValueX returns the x offset of the value column.
func ValueX(showIcons bool, shift float64) float64 {
	if showIcons {
		return valueIconX + shift
	}
	return valueX + shift
}

// ValueText returns the display text of an entry's value.
func ValueText(e StatEntry, numberFormat string) string {
	var s string
	if e.Fixed > 0 {
		s = strconv.FormatFloat(e.Value, 'f', e.Fixed, 64)
	} else {
		s = format.Number(e.Value, numberFormat)
	}
	if e.Unit != "" {
		s += " " + e.Unit
	}
	return s
}

// BuildRow returns the fragment for entry at visible index i. Vertical
// placement is left to the layout engine; the index only drives animation
// timing.
func BuildRow(e StatEntry, i int, p RowParams) layout.Fragment {
	class := "stat not_bold"
	if p.Bold {
		class = "stat bold"
	}

	var iconNode, labelX svg.Part
	if p.ShowIcons {
		iconNode = svg.El("svg",
			svg.Attr("data-testid", "icon"),
			svg.Attr("class", "icon"),
			svg.Attr("viewBox", "0 0 16 16"),
			svg.Attr("version", "1.1"),
			svg.Attr("width", "16"),
			svg.Attr("height", "16"),
			svg.Raw(e.Icon),
		)
		labelX = svg.Num("x", labelIconX)
	}

	return svg.El("g",
		svg.Attr("class", "stagger"),
		svg.Attr("style", fmt.Sprintf("animation-delay: %dms", StaggerDelay(i))),
		svg.Attr("transform", fmt.Sprintf("translate(%s, 0)", svg.FormatNum(rowOriginX))),
		iconNode,
		svg.El("text", svg.Attr("class", class), labelX, svg.Attr("y", rowTextBaselineY), svg.Text(e.Label+":")),
		svg.El("text",
			svg.Attr("class", class),
			svg.Num("x", ValueX(p.ShowIcons, p.Shift)),
			svg.Attr("y", rowTextBaselineY),
			svg.Attr("data-testid", e.ID),
			svg.Text(ValueText(e, p.NumberFormat)),
		),
	)
}
