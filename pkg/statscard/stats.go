package statscard

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/statcard/pkg/card/i18n"
	"github.com/matzehuels/statcard/pkg/card/icons"
	"github.com/matzehuels/statcard/pkg/card/rank"
	"github.com/matzehuels/statcard/pkg/errors"
)

// Stats is the statistics record of one user.
type Stats struct {
	Name                     string    `toml:"name" json:"name" bson:"name"`
	TotalStars               float64   `toml:"total_stars" json:"total_stars" bson:"total_stars"`
	TotalCommits             float64   `toml:"total_commits" json:"total_commits" bson:"total_commits"`
	TotalIssues              float64   `toml:"total_issues" json:"total_issues" bson:"total_issues"`
	TotalPRs                 float64   `toml:"total_prs" json:"total_prs" bson:"total_prs"`
	TotalPRsMerged           float64   `toml:"total_prs_merged" json:"total_prs_merged" bson:"total_prs_merged"`
	MergedPRsPercentage      float64   `toml:"merged_prs_percentage" json:"merged_prs_percentage" bson:"merged_prs_percentage"`
	TotalReviews             float64   `toml:"total_reviews" json:"total_reviews" bson:"total_reviews"`
	TotalDiscussionsStarted  float64   `toml:"total_discussions_started" json:"total_discussions_started" bson:"total_discussions_started"`
	TotalDiscussionsAnswered float64   `toml:"total_discussions_answered" json:"total_discussions_answered" bson:"total_discussions_answered"`
	ContributedTo            float64   `toml:"contributed_to" json:"contributed_to" bson:"contributed_to"`
	Rank                     rank.Rank `toml:"rank" json:"rank" bson:"rank"`
}

// Stat keys, in base order.
const (
	KeyStars               = "stars"
	KeyCommits             = "commits"
	KeyPRs                 = "prs"
	KeyPRsMerged           = "prs_merged"
	KeyPRsMergedPercentage = "prs_merged_percentage"
	KeyReviews             = "reviews"
	KeyIssues              = "issues"
	KeyDiscussionsStarted  = "discussions_started"
	KeyDiscussionsAnswered = "discussions_answered"
	KeyContribs            = "contribs"
)

// Keys lists every stat key in base order.
var Keys = []string{
	KeyStars, KeyCommits, KeyPRs, KeyPRsMerged, KeyPRsMergedPercentage,
	KeyReviews, KeyIssues, KeyDiscussionsStarted, KeyDiscussionsAnswered, KeyContribs,
}

// OptionalKeys are only candidates when requested through Options.Show.
var OptionalKeys = []string{
	KeyPRsMerged, KeyPRsMergedPercentage, KeyReviews,
	KeyDiscussionsStarted, KeyDiscussionsAnswered,
}

// StatEntry is one row of the card.
type StatEntry struct {
	Key   string // stat key, e.g. "stars"
	Icon  string // glyph markup
	Label string
	Value float64
	ID    string // test id of the value text
	Unit  string // optional unit symbol, e.g. "%"
	Fixed int    // when positive, Value is printed with this many decimals
}

// Shift constants for the value column.
const (
	BaseValueShift = 79.01
	LongLocaleGap  = 50.0
)

// ValueShift returns the extra value-column offset for locale.
func ValueShift(locale string) float64 {
	if i18n.IsLong(locale) {
		return BaseValueShift + LongLocaleGap
	}
	return BaseValueShift
}

// AssembleParams are the collaborators and flags of [Assemble].
type AssembleParams struct {
	Locale            string
	IncludeAllCommits bool
	HideRank          bool
	Now               time.Time
	Translator        Translator
	Glyphs            Glyphs
}

// Assemble builds the visible stat entries in base order. The full
// candidate set is built first; optional keys join it only when named in
// show, then keys named in hide are removed. Unknown keys in either list
// are ignored.
//
// When no entry remains and the rank is hidden, Assemble returns an
// ErrCodeNothingToRender error.
func Assemble(stats Stats, hide, show []string, p AssembleParams) ([]StatEntry, error) {
	tr := p.Translator
	if tr == nil {
		tr = i18n.Default()
	}
	gl := p.Glyphs
	if gl == nil {
		gl = icons.Octicons
	}
	t := func(key string) string { return tr.Translate(p.Locale, key) }

	commitsLabel := t(i18n.KeyCommits)
	if !p.IncludeAllCommits {
		commitsLabel += " (" + strconv.Itoa(p.Now.Year()) + ")"
	}

	shown := keySet(show)
	optional := keySet(OptionalKeys)
	hidden := keySet(hide)

	candidates := []StatEntry{
		{Key: KeyStars, Icon: gl.Glyph(icons.Star), Label: t(i18n.KeyTotalStars), Value: stats.TotalStars},
		{Key: KeyCommits, Icon: gl.Glyph(icons.Commits), Label: commitsLabel, Value: stats.TotalCommits},
		{Key: KeyPRs, Icon: gl.Glyph(icons.PRs), Label: t(i18n.KeyPRs), Value: stats.TotalPRs},
		{Key: KeyPRsMerged, Icon: gl.Glyph(icons.PRsMerged), Label: t(i18n.KeyPRsMerged), Value: stats.TotalPRsMerged},
		{Key: KeyPRsMergedPercentage, Icon: gl.Glyph(icons.PRsMergedPercentage), Label: t(i18n.KeyPRsMergedPercentage), Value: stats.MergedPRsPercentage, Unit: "%", Fixed: 2},
		{Key: KeyReviews, Icon: gl.Glyph(icons.Reviews), Label: t(i18n.KeyReviews), Value: stats.TotalReviews},
		{Key: KeyIssues, Icon: gl.Glyph(icons.Issues), Label: t(i18n.KeyIssues), Value: stats.TotalIssues},
		{Key: KeyDiscussionsStarted, Icon: gl.Glyph(icons.DiscussionsStarted), Label: t(i18n.KeyDiscussionsStarted), Value: stats.TotalDiscussionsStarted},
		{Key: KeyDiscussionsAnswered, Icon: gl.Glyph(icons.DiscussionsAnswered), Label: t(i18n.KeyDiscussionsAnswered), Value: stats.TotalDiscussionsAnswered},
		{Key: KeyContribs, Icon: gl.Glyph(icons.Contribs), Label: t(i18n.KeyContribs), Value: stats.ContributedTo},
	}

	entries := make([]StatEntry, 0, len(candidates))
	for _, e := range candidates {
		if optional[e.Key] && !shown[e.Key] {
			continue
		}
		if hidden[e.Key] {
			continue
		}
		e.ID = e.Key
		entries = append(entries, e)
	}

	if len(entries) == 0 && p.HideRank {
		return nil, ErrNothingToRender()
	}
	return entries, nil
}

// ErrNothingToRender returns the error for a card with no rows and no rank.
func ErrNothingToRender() *errors.Error {
	return errors.Titled(errors.ErrCodeNothingToRender,
		"Could not render stats card.",
		"Either stats or rank are required.")
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			set[k] = true
		}
	}
	return set
}
