// Package frame wraps card bodies in the outer SVG envelope.
//
// A [Card] owns everything outside the body: the root element and its
// size, accessibility title and description, the embedded stylesheet and
// animation toggle, gradient definitions, the background rectangle with
// its border, and the title block.
package frame

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/statcard/pkg/card/layout"
	"github.com/matzehuels/statcard/pkg/card/styles"
	"github.com/matzehuels/statcard/pkg/card/theme"
	"github.com/matzehuels/statcard/pkg/svg"
)

// DefaultBorderRadius is the corner radius used when none is configured.
const DefaultBorderRadius = 4.5

const (
	paddingX = 25.0
	paddingY = 35.0
	xmlns    = "http://www.w3.org/2000/svg"
)

// Config holds the fixed properties of a card.
type Config struct {
	Width        float64
	Height       float64
	BorderRadius float64
	Colors       theme.Colors
	Title        string
}

// Card is the outer envelope of one rendered card.
type Card struct {
	cfg        Config
	css        string
	hideBorder bool
	hideTitle  bool
	animations bool
	a11yTitle  string
	a11yDesc   string
}

// New returns a card with a border, a title and animations enabled.
func New(cfg Config) *Card {
	return &Card{cfg: cfg, animations: true}
}

// SetHideBorder makes the border transparent.
func (c *Card) SetHideBorder(v bool) { c.hideBorder = v }

// SetHideTitle drops the title block and moves the body up.
func (c *Card) SetHideTitle(v bool) { c.hideTitle = v }

// SetCSS sets the content-specific stylesheet.
func (c *Card) SetCSS(css string) { c.css = css }

// DisableAnimations zeroes all animations in the document.
func (c *Card) DisableAnimations() { c.animations = false }

// SetAccessibilityLabel sets the <title> and <desc> of the document.
func (c *Card) SetAccessibilityLabel(title, desc string) {
	c.a11yTitle = title
	c.a11yDesc = desc
}

// Render returns the complete SVG document with body inside the card.
func (c *Card) Render(body svg.Node) string {
	w, h := c.cfg.Width, c.cfg.Height
	bodyY := paddingY + 20
	if c.hideTitle {
		bodyY = paddingX
	}

	root := svg.El("svg",
		svg.Num("width", w),
		svg.Num("height", h),
		svg.Attr("viewBox", fmt.Sprintf("0 0 %s %s", svg.FormatNum(w), svg.FormatNum(h))),
		svg.Attr("fill", "none"),
		svg.Attr("xmlns", xmlns),
		svg.Attr("role", "img"),
		svg.Attr("aria-labelledby", "descId"),
		svg.El("title", svg.Attr("id", "titleId"), svg.Text(c.a11yTitle)),
		svg.El("desc", svg.Attr("id", "descId"), svg.Text(c.a11yDesc)),
		svg.El("style", svg.Raw(c.stylesheet())),
		gradientDefs(c.cfg.Colors.Gradient),
		c.background(),
		c.title(),
		svg.El("g",
			svg.Attr("data-testid", "main-card-body"),
			svg.Attr("transform", fmt.Sprintf("translate(0, %s)", svg.FormatNum(bodyY))),
			body,
		),
	)
	return svg.String(root)
}

func (c *Card) stylesheet() string {
	var buf bytes.Buffer
	buf.WriteString(styles.Header(c.cfg.Colors.TitleColor))
	buf.WriteString(c.css)
	if c.animations {
		buf.WriteString(styles.Animations)
	} else {
		buf.WriteString(styles.NoAnimations)
	}
	buf.WriteString("\n  ")
	return buf.String()
}

func (c *Card) background() svg.Node {
	rect := svg.El("rect",
		svg.Attr("data-testid", "card-bg"),
		svg.Attr("x", "0.5"),
		svg.Attr("y", "0.5"),
		svg.Num("rx", c.cfg.BorderRadius),
		svg.Attr("height", "99%"),
		svg.Attr("stroke", c.cfg.Colors.BorderColor),
		svg.Num("width", c.cfg.Width-1),
		svg.Attr("fill", c.cfg.Colors.BgColor),
		svg.Attr("stroke-opacity", "1"),
	)
	if c.hideBorder {
		rect.Set("stroke-opacity", "0")
	}
	return rect
}

func (c *Card) title() svg.Node {
	if c.hideTitle {
		return nil
	}
	text := svg.El("text",
		svg.Attr("x", "0"),
		svg.Attr("y", "0"),
		svg.Attr("class", "header"),
		svg.Attr("data-testid", "header"),
		svg.Text(c.cfg.Title),
	)
	return svg.El("g",
		svg.Attr("data-testid", "card-title"),
		svg.Attr("transform", fmt.Sprintf("translate(%s, %s)", svg.FormatNum(paddingX), svg.FormatNum(paddingY))),
		svg.Group(layout.Flex([]layout.Fragment{text}, 25, layout.Row, nil)),
	)
}

func gradientDefs(g *theme.Gradient) svg.Node {
	if g == nil || len(g.Stops) < 2 {
		return nil
	}
	grad := svg.El("linearGradient",
		svg.Attr("id", "gradient"),
		svg.Attr("gradientTransform", fmt.Sprintf("rotate(%s)", g.Angle)),
		svg.Attr("gradientUnits", "userSpaceOnUse"),
	)
	last := float64(len(g.Stops) - 1)
	for i, stop := range g.Stops {
		grad.Append(svg.El("stop",
			svg.Attr("offset", svg.FormatNum(float64(i)*100/last)+"%"),
			svg.Attr("stop-color", stop),
		))
	}
	return svg.El("defs", grad)
}
