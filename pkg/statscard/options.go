package statscard

import (
	"github.com/matzehuels/statcard/pkg/card/format"
	"github.com/matzehuels/statcard/pkg/card/frame"
	"github.com/matzehuels/statcard/pkg/card/i18n"
	"github.com/matzehuels/statcard/pkg/card/rank"
	"github.com/matzehuels/statcard/pkg/card/theme"
	"github.com/matzehuels/statcard/pkg/errors"
)

// Default option values.
const (
	DefaultLineHeight   = 25.0
	DefaultTheme        = theme.Default
	DefaultNumberFormat = format.Short
	DefaultRankIcon     = rank.IconDefault
	DefaultLocale       = i18n.Fallback
)

// Options configures a stats card. The zero value renders a valid card.
type Options struct {
	Hide []string // stat keys to suppress
	Show []string // optional stat keys to include, see OptionalKeys

	ShowIcons         bool
	HideTitle         bool
	HideBorder        bool
	HideRank          bool
	IncludeAllCommits bool
	DisableAnimations bool

	CardWidth    float64  // explicit width; clamped to the content minimum
	CardHeight   float64  // explicit height
	LineHeight   float64  // row gap (default 25)
	BorderRadius *float64 // corner radius (default 4.5)

	TitleColor  string
	RingColor   string
	IconColor   string
	TextColor   string
	BgColor     string // hex or "angle,hex,hex[,...]" gradient
	BorderColor string

	TextBold     *bool  // default true
	Theme        string // palette name (default "default")
	CustomTitle  string
	NumberFormat string // "short" or "long"
	Locale       string
	RankIcon     string // "default", "github" or "percentile"
}

// SetDefaults fills unset options with their defaults.
func (o *Options) SetDefaults() {
	if o.LineHeight <= 0 {
		o.LineHeight = DefaultLineHeight
	}
	if o.BorderRadius == nil {
		r := frame.DefaultBorderRadius
		o.BorderRadius = &r
	}
	if o.TextBold == nil {
		b := true
		o.TextBold = &b
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.NumberFormat == "" {
		o.NumberFormat = DefaultNumberFormat
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.RankIcon == "" {
		o.RankIcon = DefaultRankIcon
	}
}

// Bold reports whether row text is bold.
func (o Options) Bold() bool {
	return o.TextBold == nil || *o.TextBold
}

// Overrides returns the explicit color overrides.
func (o Options) Overrides() theme.Overrides {
	return theme.Overrides{
		TitleColor:  o.TitleColor,
		IconColor:   o.IconColor,
		TextColor:   o.TextColor,
		BgColor:     o.BgColor,
		BorderColor: o.BorderColor,
		RingColor:   o.RingColor,
	}
}

// Validate checks options supplied by users. [Render] does not call it:
// invalid colors fall back to the theme and unknown locales to English.
// Request handlers call it to reject bad input up front.
func (o Options) Validate() error {
	colors := []struct{ name, value string }{
		{"title_color", o.TitleColor},
		{"ring_color", o.RingColor},
		{"icon_color", o.IconColor},
		{"text_color", o.TextColor},
		{"bg_color", o.BgColor},
		{"border_color", o.BorderColor},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.name, c.value); err != nil {
			return err
		}
	}
	if err := i18n.Default().Validate(o.Locale); err != nil {
		return err
	}
	if err := errors.ValidateNumberFormat(o.NumberFormat); err != nil {
		return err
	}
	if err := errors.ValidateRankIcon(o.RankIcon); err != nil {
		return err
	}
	if o.CardWidth < 0 || o.CardHeight < 0 || o.LineHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "card_width, card_height and line_height must not be negative")
	}
	return nil
}
