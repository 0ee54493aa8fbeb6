// Package styles generates the CSS embedded in card <style> blocks.
package styles

import (
	"fmt"
	"strings"

	"github.com/matzehuels/statcard/pkg/card/rank"
	"github.com/matzehuels/statcard/pkg/svg"
)

// Params are the inputs of the stats stylesheet.
type Params struct {
	TitleColor string
	TextColor  string
	IconColor  string
	RingColor  string
	ShowIcons  bool
	Progress   float64 // rank progress in [0, 100]
}

// Stats returns the stylesheet for stat rows and the rank indicator.
func Stats(p Params) string {
	display := "none"
	if p.ShowIcons {
		display = "block"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `
    .stat {
      font: 600 14px 'Segoe UI', Ubuntu, "Helvetica Neue", Sans-Serif; fill: %s;
    }
    @supports(-moz-appearance: auto) {
      .stat { font-size: 12px; }
    }
    .stagger {
      opacity: 0;
      animation: fadeInAnimation 0.3s ease-in-out forwards;
    }
    .rank-text {
      font: 800 24px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s;
      animation: scaleInAnimation 0.3s ease-in-out forwards;
    }
    .rank-percentile-header {
      font-size: 14px;
    }
    .rank-percentile-text {
      font-size: 16px;
    }
    .not_bold { font-weight: 400 }
    .bold { font-weight: 700 }
    .icon {
      fill: %s;
      display: %s;
    }
    .rank-circle-rim {
      stroke: %s;
      fill: none;
      stroke-width: 6;
      opacity: 0.2;
    }
    .rank-circle {
      stroke: %s;
      stroke-dasharray: 250;
      fill: none;
      stroke-width: 6;
      stroke-linecap: round;
      opacity: 0.8;
      transform-origin: -10px 8px;
      transform: rotate(-90deg);
      animation: rankAnimation 1s forwards ease-in-out;
    }`, p.TextColor, p.TextColor, p.IconColor, display, p.RingColor, p.RingColor)
	b.WriteString(ProgressAnimation(p.Progress))
	return b.String()
}

// ProgressAnimation returns the keyframes that sweep the rank arc from
// empty to progress percent.
func ProgressAnimation(progress float64) string {
	return fmt.Sprintf(`
    @keyframes rankAnimation {
      from {
        stroke-dashoffset: %s;
      }
      to {
        stroke-dashoffset: %s;
      }
    }`, svg.FormatNum(rank.DashOffset(0)), svg.FormatNum(rank.DashOffset(progress)))
}

// Header returns the title rule shared by all cards.
func Header(titleColor string) string {
	return fmt.Sprintf(`
    .header {
      font: 600 18px 'Segoe UI', Ubuntu, Sans-Serif;
      fill: %s;
      animation: fadeInAnimation 0.8s ease-in-out forwards;
    }
    @supports(-moz-appearance: auto) {
      .header { font-size: 15.5px; }
    }`, titleColor)
}

// Animations are the entrance keyframes referenced by the card classes.
const Animations = `
    @keyframes scaleInAnimation {
      from {
        transform: translate(-5px, 5px) scale(0);
      }
      to {
        transform: translate(-5px, 5px) scale(1);
      }
    }
    @keyframes fadeInAnimation {
      from {
        opacity: 0;
      }
      to {
        opacity: 1;
      }
    }`

// NoAnimations zeroes every animation in the document.
const NoAnimations = `
    * { animation-duration: 0s !important; animation-delay: 0s !important; }`

// Error is the stylesheet of the error card.
func Error(titleColor, textColor string) string {
	return fmt.Sprintf(`
    .text { font: 600 16px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s }
    .small { font: 600 12px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s }
    .gray { fill: #858585 }`, titleColor, textColor)
}
