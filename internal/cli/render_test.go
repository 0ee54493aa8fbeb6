package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/statscard"
)

const annaRecord = `
name = "Anna"
total_stars = 1500
total_commits = 320

[rank]
level = "A"
percentile = 20
`

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		output string
		n      int
		want   string
	}{
		{"next to input", "stats/anna.toml", "", 1, filepath.Join("stats", "anna.svg")},
		{"explicit file", "stats/anna.toml", "card.svg", 1, "card.svg"},
		{"output directory", "stats/anna.toml", "out", 2, filepath.Join("out", "anna.svg")},
		{"stdout", "anna.json", "-", 1, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.in, tt.output, tt.n); got != tt.want {
				t.Errorf("outputPath(%q, %q, %d) = %q, want %q", tt.in, tt.output, tt.n, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"prs", []string{"prs"}},
		{"prs, issues,,", []string{"prs", "issues"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderFlags(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.renderCommand()
	if err := cmd.ParseFlags([]string{"--hide", "prs,issues", "--show-icons", "--border-radius", "0", "--locale", "DE"}); err != nil {
		t.Fatal(err)
	}

	var opts renderOpts
	opts.hide, _ = cmd.Flags().GetString("hide")
	opts.radius, _ = cmd.Flags().GetFloat64("border-radius")
	opts.textBold, _ = cmd.Flags().GetBool("text-bold")
	opts.card.ShowIcons, _ = cmd.Flags().GetBool("show-icons")
	opts.card.Locale, _ = cmd.Flags().GetString("locale")

	card := opts.cardOptions(cmd)
	if !reflect.DeepEqual(card.Hide, []string{"prs", "issues"}) {
		t.Errorf("Hide = %v", card.Hide)
	}
	if !card.ShowIcons {
		t.Error("ShowIcons = false")
	}
	if card.BorderRadius == nil || *card.BorderRadius != 0 {
		t.Errorf("BorderRadius = %v, want explicit 0", card.BorderRadius)
	}
	if card.TextBold != nil {
		t.Errorf("TextBold = %v, want unset", *card.TextBold)
	}
	if card.Locale != "de" {
		t.Errorf("Locale = %q, want de", card.Locale)
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"anna.toml": annaRecord,
		"bob.json":  `{"total_stars": 3, "rank": {"level": "C", "percentile": 90}}`,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out := filepath.Join(dir, "cards")
	ctx := withLogger(context.Background(), newLogger(&bytes.Buffer{}, log.InfoLevel))

	inputs := []string{filepath.Join(dir, "anna.toml"), filepath.Join(dir, "bob.json")}
	if err := runRender(ctx, inputs, out, 2, statscard.Options{}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	anna, err := os.ReadFile(filepath.Join(out, "anna.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(anna), "Anna&#39;s GitHub Stats") {
		t.Error("anna.svg missing title")
	}
	bob, err := os.ReadFile(filepath.Join(out, "bob.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bob), "bob&#39;s GitHub Stats") {
		t.Error("bob.svg should take its name from the file")
	}
}

func TestRunRenderErrors(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if err := runRender(ctx, []string{filepath.Join(dir, "missing.toml")}, "", 1, statscard.Options{}); err == nil {
		t.Error("missing input should fail")
	}
	if err := runRender(ctx, []string{"a.toml", "b.toml"}, "-", 1, statscard.Options{}); err == nil {
		t.Error("stdout with several inputs should fail")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := statscard.Options{HideRank: true, Hide: statscard.Keys}
	if err := runRender(ctx, []string{empty}, "", 1, opts); err == nil {
		t.Error("empty card should fail")
	}
}
