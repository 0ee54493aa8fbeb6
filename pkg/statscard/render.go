package statscard

import (
	"strings"
	"time"

	"github.com/matzehuels/statcard/pkg/card/frame"
	"github.com/matzehuels/statcard/pkg/card/i18n"
	"github.com/matzehuels/statcard/pkg/card/icons"
	"github.com/matzehuels/statcard/pkg/card/layout"
	"github.com/matzehuels/statcard/pkg/card/rank"
	"github.com/matzehuels/statcard/pkg/card/styles"
	"github.com/matzehuels/statcard/pkg/card/theme"
	"github.com/matzehuels/statcard/pkg/svg"
)

// Glyphs maps an icon name to raw path markup.
type Glyphs interface {
	Glyph(name string) string
}

// Translator returns the string for key in locale, falling back to a
// default locale when the pair is missing.
type Translator interface {
	Translate(locale, key string) string
}

// StylesheetFunc produces the card-specific CSS.
type StylesheetFunc func(styles.Params) string

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to [Clock].
type ClockFunc func() time.Time

// Now implements [Clock].
func (f ClockFunc) Now() time.Time { return f() }

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// hideTitleOffset is removed from computed heights when the title is hidden.
const hideTitleOffset = 30.0

type renderer struct {
	clock      Clock
	translator Translator
	glyphs     Glyphs
	stylesheet StylesheetFunc
}

// RenderOption configures the collaborators of [Render].
type RenderOption func(*renderer)

// WithClock sets the time source for the commits year.
func WithClock(c Clock) RenderOption {
	return func(r *renderer) { r.clock = c }
}

// WithTranslator sets the string tables.
func WithTranslator(t Translator) RenderOption {
	return func(r *renderer) { r.translator = t }
}

// WithGlyphs sets the icon glyphs.
func WithGlyphs(g Glyphs) RenderOption {
	return func(r *renderer) { r.glyphs = g }
}

// WithStylesheet sets the stylesheet generator.
func WithStylesheet(f StylesheetFunc) RenderOption {
	return func(r *renderer) { r.stylesheet = f }
}

func newRenderer(opts []RenderOption) *renderer {
	r := &renderer{
		clock:      ClockFunc(time.Now),
		translator: i18n.Default(),
		glyphs:     icons.Octicons,
		stylesheet: styles.Stats,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the SVG document of the stats card for stats and opts.
//
// The only error is ErrCodeNothingToRender, returned when every stat is
// hidden and the rank is hidden too.
func Render(stats Stats, opts Options, ro ...RenderOption) (string, error) {
	r := newRenderer(ro)
	opts.SetDefaults()

	entries, err := Assemble(stats, opts.Hide, opts.Show, AssembleParams{
		Locale:            opts.Locale,
		IncludeAllCommits: opts.IncludeAllCommits,
		HideRank:          opts.HideRank,
		Now:               r.clock.Now(),
		Translator:        r.translator,
		Glyphs:            r.glyphs,
	})
	if err != nil {
		return "", err
	}

	colors := theme.Resolve(opts.Theme, opts.Overrides())
	title := r.title(stats, opts, len(entries) > 0)

	rowParams := RowParams{
		ShowIcons:    opts.ShowIcons,
		Shift:        ValueShift(opts.Locale),
		Bold:         opts.Bold(),
		NumberFormat: opts.NumberFormat,
	}
	rows := make([]layout.Fragment, len(entries))
	for i, e := range entries {
		rows[i] = BuildRow(e, i, rowParams)
	}

	content := layout.Content{
		Rows:       len(entries),
		RankShown:  !opts.HideRank,
		ShowIcons:  opts.ShowIcons,
		LineHeight: opts.LineHeight,
		TitleWidth: layout.MeasureText(title, 0),
	}
	geo := layout.Measure(content, opts.CardWidth, opts.CardHeight)
	cardHeight := geo.Height
	if opts.HideTitle && opts.CardHeight <= 0 {
		cardHeight -= hideTitleOffset
	}

	var circle layout.Fragment
	if !opts.HideRank {
		circle = rank.Circle(rank.Params{
			Rank:      stats.Rank,
			IconStyle: opts.RankIcon,
			X:         rank.TranslateX(geo.Width, len(entries) > 0, opts.ShowIcons),
			Height:    geo.Height,
			Glyphs:    r.glyphs,
		})
	}

	card := frame.New(frame.Config{
		Width:        geo.Width,
		Height:       cardHeight,
		BorderRadius: *opts.BorderRadius,
		Colors:       colors,
		Title:        title,
	})
	card.SetHideBorder(opts.HideBorder)
	card.SetHideTitle(opts.HideTitle)
	card.SetCSS(r.stylesheet(styles.Params{
		TitleColor: colors.TitleColor,
		TextColor:  colors.TextColor,
		IconColor:  colors.IconColor,
		RingColor:  colors.RingColor,
		ShowIcons:  opts.ShowIcons,
		Progress:   stats.Rank.Progress(),
	}))
	if opts.DisableAnimations {
		card.DisableAnimations()
	}
	card.SetAccessibilityLabel(title+", Rank: "+stats.Rank.Level, describe(entries, opts.NumberFormat))

	body := svg.Group{
		circle,
		svg.El("svg", svg.Attr("x", "0"), svg.Attr("y", "0"), layout.Stack(rows, opts.LineHeight)),
	}
	return card.Render(body), nil
}

// title returns the custom title or the translated stats title. Cards
// without rows use the rank title.
func (r *renderer) title(stats Stats, opts Options, hasRows bool) string {
	if opts.CustomTitle != "" {
		return opts.CustomTitle
	}
	key := i18n.KeyTitle
	if !hasRows {
		key = i18n.KeyRankTitle
	}
	return i18n.Title(r.translator.Translate(opts.Locale, key), stats.Name)
}

func describe(entries []StatEntry, numberFormat string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Label + ": " + ValueText(e, numberFormat)
	}
	return strings.Join(parts, ", ")
}
