// Package i18n holds the card string tables and the locale rules that
// affect layout.
//
// Strings live in an embedded TOML document keyed by locale code then by
// string key. Lookups never fail: a missing key falls back to the base
// language of the locale and then to English.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/matzehuels/statcard/pkg/errors"
)

// Fallback is the locale every lookup ends at.
const Fallback = "en"

// String keys.
const (
	KeyTitle               = "title"
	KeyRankTitle           = "ranktitle"
	KeyTotalStars          = "totalstars"
	KeyCommits             = "commits"
	KeyPRs                 = "prs"
	KeyPRsMerged           = "prs-merged"
	KeyPRsMergedPercentage = "prs-merged-percentage"
	KeyReviews             = "reviews"
	KeyIssues              = "issues"
	KeyDiscussionsStarted  = "discussions-started"
	KeyDiscussionsAnswered = "discussions-answered"
	KeyContribs            = "contribs"
)

// LongLocales are locales whose labels need extra room before the value
// column.
var LongLocales = []string{
	"cn", "es", "fr", "pt-br", "ru", "uk-ua", "id",
	"ml", "my", "pl", "de", "nl", "zh-tw", "uz",
}

// IsLong reports whether locale is one of [LongLocales].
func IsLong(locale string) bool {
	code := strings.ToLower(locale)
	for _, l := range LongLocales {
		if l == code {
			return true
		}
	}
	return false
}

//go:embed locales.toml
var localesTOML []byte

// Catalog is a set of string tables.
type Catalog struct {
	tables map[string]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded string tables.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(localesTOML)
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded locales: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse builds a catalog from a TOML document of [locale] tables.
// The document must contain the fallback locale.
func Parse(data []byte) (*Catalog, error) {
	tables := make(map[string]map[string]string)
	if _, err := toml.Decode(string(data), &tables); err != nil {
		return nil, fmt.Errorf("decode locales: %w", err)
	}
	if _, ok := tables[Fallback]; !ok {
		return nil, fmt.Errorf("locales: missing %q table", Fallback)
	}
	norm := make(map[string]map[string]string, len(tables))
	for code, t := range tables {
		norm[strings.ToLower(code)] = t
	}
	return &Catalog{tables: norm}, nil
}

// Locales returns the accepted locale codes in sorted order.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.tables))
	for code := range c.tables {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Supported reports whether locale has a table of its own.
func (c *Catalog) Supported(locale string) bool {
	_, ok := c.tables[strings.ToLower(locale)]
	return ok
}

// Validate rejects locales without a table. The empty locale is valid.
func (c *Catalog) Validate(locale string) error {
	if locale == "" || c.Supported(locale) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidLocale, "locale %q is not supported", locale)
}

// Translate returns the string for key in locale. It tries the exact code,
// then the base language of the code, then [Fallback]. Unknown keys return
// the key itself.
func (c *Catalog) Translate(locale, key string) string {
	code := strings.ToLower(locale)
	if s, ok := c.lookup(code, key); ok {
		return s
	}
	if base := baseLocale(code); base != "" && base != code {
		if s, ok := c.lookup(base, key); ok {
			return s
		}
	}
	if s, ok := c.lookup(Fallback, key); ok {
		return s
	}
	return key
}

func (c *Catalog) lookup(code, key string) (string, bool) {
	t, ok := c.tables[code]
	if !ok {
		return "", false
	}
	s, ok := t[key]
	return s, ok && s != ""
}

// baseLocale maps a BCP 47 code to the table code of its language.
func baseLocale(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		if script, _ := tag.Script(); script.String() == "Hant" {
			return "zh-tw"
		}
		return "cn"
	case "pt":
		return "pt-br"
	case "uk":
		return "uk-ua"
	}
	return base.String()
}

// Apostrophe returns the English possessive suffix for name: "'" when the
// name ends in s or x, "'s" otherwise.
func Apostrophe(name string) string {
	if name == "" {
		return "'s"
	}
	switch strings.ToLower(name[len(name)-1:]) {
	case "s", "x":
		return "'"
	}
	return "'s"
}

// Title fills the {name} and {apostrophe} placeholders of a title template.
func Title(template, name string) string {
	return strings.NewReplacer("{name}", name, "{apostrophe}", Apostrophe(name)).Replace(template)
}
