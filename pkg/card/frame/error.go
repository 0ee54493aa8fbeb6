package frame

import (
	"strings"

	"github.com/matzehuels/statcard/pkg/card/styles"
	"github.com/matzehuels/statcard/pkg/card/theme"
	"github.com/matzehuels/statcard/pkg/svg"
)

// Error card dimensions.
const (
	ErrorCardWidth  = 576.5
	ErrorCardHeight = 120.0
)

// DefaultErrorTitle is the headline of error cards without a title.
const DefaultErrorTitle = "Something went wrong!"

// ErrorContent is the text of an error card. Message may span several
// lines; Secondary is shown in gray below it.
type ErrorContent struct {
	Title     string
	Message   string
	Secondary string
}

// RenderError returns a small SVG card describing a failure, so that image
// embeds still display something useful.
func RenderError(e ErrorContent, colors theme.Colors) string {
	title := e.Title
	if title == "" {
		title = DefaultErrorTitle
	}

	lines := svg.El("text",
		svg.Attr("data-testid", "message"),
		svg.Attr("x", "25"),
		svg.Attr("y", "55"),
		svg.Attr("class", "text small"),
	)
	for _, line := range strings.Split(e.Message, "\n") {
		if line == "" {
			continue
		}
		lines.Append(svg.El("tspan", svg.Attr("x", "25"), svg.Attr("dy", "18"), svg.Text(line)))
	}
	if e.Secondary != "" {
		lines.Append(svg.El("tspan", svg.Attr("x", "25"), svg.Attr("dy", "18"), svg.Attr("class", "gray"), svg.Text(e.Secondary)))
	}

	root := svg.El("svg",
		svg.Num("width", ErrorCardWidth),
		svg.Num("height", ErrorCardHeight),
		svg.Attr("viewBox", "0 0 576.5 120"),
		svg.Attr("fill", "none"),
		svg.Attr("xmlns", xmlns),
		svg.El("style", svg.Raw(styles.Error(colors.TitleColor, colors.TextColor)+"\n  ")),
		gradientDefs(colors.Gradient),
		svg.El("rect",
			svg.Attr("x", "0.5"),
			svg.Attr("y", "0.5"),
			svg.Num("width", ErrorCardWidth-1),
			svg.Attr("height", "99%"),
			svg.Num("rx", DefaultBorderRadius),
			svg.Attr("fill", colors.BgColor),
			svg.Attr("stroke", colors.BorderColor),
		),
		svg.El("text", svg.Attr("x", "25"), svg.Attr("y", "45"), svg.Attr("class", "text"), svg.Text(title)),
		lines,
	)
	return svg.String(root)
}
