package server

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// ParseQuery reads the username and render options from query parameters.
// Lists are comma separated; booleans accept only "true" and "false", and
// any other value leaves the option at its default.
func ParseQuery(q url.Values) (string, statscard.Options, error) {
	username := strings.TrimSpace(q.Get("username"))
	if err := errors.ValidateUsername(username); err != nil {
		return "", statscard.Options{}, err
	}

	opts := statscard.Options{
		Hide:         parseList(q.Get("hide")),
		Show:         parseList(q.Get("show")),
		TitleColor:   q.Get("title_color"),
		RingColor:    q.Get("ring_color"),
		IconColor:    q.Get("icon_color"),
		TextColor:    q.Get("text_color"),
		BgColor:      q.Get("bg_color"),
		BorderColor:  q.Get("border_color"),
		Theme:        q.Get("theme"),
		CustomTitle:  q.Get("custom_title"),
		NumberFormat: q.Get("number_format"),
		Locale:       strings.ToLower(q.Get("locale")),
		RankIcon:     q.Get("rank_icon"),
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"show_icons", &opts.ShowIcons},
		{"hide_title", &opts.HideTitle},
		{"hide_border", &opts.HideBorder},
		{"hide_rank", &opts.HideRank},
		{"include_all_commits", &opts.IncludeAllCommits},
		{"disable_animations", &opts.DisableAnimations},
	}
	for _, b := range bools {
		if v, ok := parseBool(q.Get(b.name)); ok {
			*b.dst = v
		}
	}
	if v, ok := parseBool(q.Get("text_bold")); ok {
		opts.TextBold = &v
	}

	nums := []struct {
		name string
		dst  *float64
	}{
		{"card_width", &opts.CardWidth},
		{"card_height", &opts.CardHeight},
		{"line_height", &opts.LineHeight},
	}
	for _, n := range nums {
		v, ok, err := parseNumber(q, n.name)
		if err != nil {
			return "", statscard.Options{}, err
		}
		if ok {
			*n.dst = v
		}
	}
	radius, ok, err := parseNumber(q, "border_radius")
	if err != nil {
		return "", statscard.Options{}, err
	}
	if ok {
		opts.BorderRadius = &radius
	}

	return username, opts, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func parseNumber(q url.Values, name string) (float64, bool, error) {
	s := q.Get(name)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
	}
	return v, true, nil
}

// cacheKeyOptions normalizes options for use in a cache key: defaults are
// applied and list order, which does not affect output, is dropped.
func cacheKeyOptions(opts statscard.Options) statscard.Options {
	opts.SetDefaults()
	opts.Hide = sortedLower(opts.Hide)
	opts.Show = sortedLower(opts.Show)
	return opts
}

func sortedLower(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	sort.Strings(out)
	return out
}
