package rank

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/statcard/pkg/svg"
)

func TestDashOffset(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0, math.Pi * 80},
		{100, 0},
		{50, math.Pi * 40},
		{-20, math.Pi * 80},
		{250, 0},
	}
	for _, tt := range tests {
		if got := DashOffset(tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DashOffset(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		percentile float64
		want       float64
	}{
		{0, 100},
		{12.5, 87.5},
		{100, 0},
		{140, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := (Rank{Percentile: tt.percentile}).Progress(); got != tt.want {
			t.Errorf("Progress(%v) = %v, want %v", tt.percentile, got, tt.want)
		}
	}
}

func TestCircleIconStyles(t *testing.T) {
	r := Rank{Level: "A+", Percentile: 12.34}
	tests := []struct {
		style   string
		want    []string
		notWant []string
	}{
		{IconDefault, []string{`data-testid="level-rank-icon"`, ">A+</text>"}, []string{"rank-percentile-text"}},
		{"", []string{`data-testid="level-rank-icon"`}, nil},
		{IconGitHub, []string{`data-testid="github-rank-icon"`, `<path d="M8 0c4.42`}, []string{"level-rank-icon"}},
		{IconPercentile, []string{">Top</text>", ">12.3%</text>", `class="rank-percentile-header"`}, []string{"level-rank-icon"}},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			out := svg.String(Circle(Params{Rank: r, IconStyle: tt.style, X: 365, Height: 195}))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in %s", w, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("unexpected %q in %s", nw, out)
				}
			}
		})
	}
}

func TestCirclePosition(t *testing.T) {
	out := svg.String(Circle(Params{Rank: Rank{Level: "B"}, X: 365, Height: 195}))
	want := `<g data-testid="rank-circle" transform="translate(365, 47.5)">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("got %s, want prefix %s", out, want)
	}
	if !strings.Contains(out, `<circle class="rank-circle" cx="-10" cy="8" r="40"/>`) {
		t.Errorf("missing progress circle in %s", out)
	}
}

func TestTranslateX(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		hasRows   bool
		showIcons bool
		want      float64
	}{
		{"rank only", 290, false, false, 155},
		{"default width", 450, true, false, 365},
		{"default width with icons", 467, true, true, 390.5},
		{"minimum width", 420, true, false, 350},
		{"wider card", 550, true, false, 465},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateX(tt.width, tt.hasRows, tt.showIcons); got != tt.want {
				t.Errorf("TranslateX() = %v, want %v", got, tt.want)
			}
		})
	}
}
