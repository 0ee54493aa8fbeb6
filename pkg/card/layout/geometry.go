package layout

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Width presets for the three content regimes.
const (
	CardMinWidth             = 287.0
	CardDefaultWidth         = 287.0
	RankCardMinWidth         = 420.0
	RankCardDefaultWidth     = 450.0
	RankOnlyCardMinWidth     = 290.0
	RankOnlyCardDefaultWidth = 290.0

	// IconWidth is the extra horizontal room reserved when row icons are shown.
	IconWidth = 16.0 + 1.0
)

// Height constants.
const (
	heightPadding   = 45.0
	rowsHeightFloor = 150.0
	rankOnlyFloor   = 180.0
	defaultFontSize = 10.0
	avgCharWidthEm  = 0.55
)

// Geometry is the outer size of a card.
type Geometry struct {
	Width, Height float64
}

// Content describes what the card shows, which drives its geometry.
type Content struct {
	Rows       int     // number of visible stat rows
	RankShown  bool    // whether the rank indicator is drawn
	ShowIcons  bool    // whether row icons are drawn
	LineHeight float64 // vertical gap between rows
	TitleWidth float64 // estimated width of the title text
}

// iconWidth returns the icon reservation, which only applies when rows exist.
func (c Content) iconWidth() float64 {
	if c.ShowIcons && c.Rows > 0 {
		return IconWidth
	}
	return 0
}

// MinWidth returns the smallest width the content fits in.
func (c Content) MinWidth() float64 {
	var w float64
	switch {
	case !c.RankShown:
		w = math.Max(50+c.TitleWidth*2, CardMinWidth)
	case c.Rows > 0:
		w = RankCardMinWidth
	default:
		w = RankOnlyCardMinWidth
	}
	return w + c.iconWidth()
}

// DefaultWidth returns the preset width for the content regime.
func (c Content) DefaultWidth() float64 {
	var w float64
	switch {
	case !c.RankShown:
		w = CardDefaultWidth
	case c.Rows > 0:
		w = RankCardDefaultWidth
	default:
		w = RankOnlyCardDefaultWidth
	}
	return w + c.iconWidth()
}

// CardWidth returns explicit if positive, otherwise the default width, and
// in both cases clamps the result to the minimum width.
func CardWidth(c Content, explicit float64) float64 {
	w := c.DefaultWidth()
	if explicit > 0 {
		w = explicit
	}
	return math.Max(w, c.MinWidth())
}

// HeightFloor returns the minimum computed height: 150 when rows exist,
// 180 for a rank-only card, and 0 when nothing is shown.
func HeightFloor(c Content) float64 {
	switch {
	case c.Rows > 0:
		return rowsHeightFloor
	case c.RankShown:
		return rankOnlyFloor
	default:
		return 0
	}
}

// CardHeight returns explicit if positive, otherwise
// max(45 + (rows+1)*lineHeight, floor).
func CardHeight(c Content, explicit float64) float64 {
	if explicit > 0 {
		return explicit
	}
	return math.Max(heightPadding+float64(c.Rows+1)*c.LineHeight, HeightFloor(c))
}

// Measure returns the card geometry for c.
func Measure(c Content, explicitWidth, explicitHeight float64) Geometry {
	return Geometry{
		Width:  CardWidth(c, explicitWidth),
		Height: CardHeight(c, explicitHeight),
	}
}

// MeasureText estimates the rendered width of s at fontSize (10 when zero).
// Wide runes (CJK) count as two cells.
func MeasureText(s string, fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	return float64(runewidth.StringWidth(s)) * avgCharWidthEm * fontSize
}
