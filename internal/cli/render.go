package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/statcard/pkg/source"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file (single input) or directory (several)
	concurrency int
	hide        string
	show        string
	textBold    bool
	radius      float64
	card        statscard.Options
}

// renderCommand creates the render command for turning stats records into
// SVG cards.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		concurrency: defaultConcurrency,
		textBold:    true,
	}

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render stats records (.toml or .json) to SVG cards",
		Long: `Render one or more stats records to SVG cards.

Each record becomes <name>.svg next to the input, in the directory given by
--output when several files are rendered, or at --output for a single file.
Use "-" as --output to write a single card to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card := opts.cardOptions(cmd)
			if err := card.Validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), args, opts.output, opts.concurrency, card)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single input) or directory (several inputs)")
	f.IntVarP(&opts.concurrency, "jobs", "j", opts.concurrency, "cards rendered in parallel")
	f.StringVar(&opts.hide, "hide", "", "stats to hide (comma-separated): stars,commits,prs,issues,contribs,...")
	f.StringVar(&opts.show, "show", "", "optional stats to add (comma-separated): reviews,prs_merged,prs_merged_percentage,discussions_started,discussions_answered")
	f.BoolVar(&opts.card.ShowIcons, "show-icons", false, "show an icon next to each stat")
	f.BoolVar(&opts.card.HideTitle, "hide-title", false, "hide the card title")
	f.BoolVar(&opts.card.HideBorder, "hide-border", false, "hide the card border")
	f.BoolVar(&opts.card.HideRank, "hide-rank", false, "hide the rank circle")
	f.BoolVar(&opts.card.IncludeAllCommits, "include-all-commits", false, "label commits as all-time instead of this year")
	f.BoolVar(&opts.card.DisableAnimations, "disable-animations", false, "render without CSS animations")
	f.BoolVar(&opts.textBold, "text-bold", true, "render stat labels in bold")
	f.Float64Var(&opts.card.CardWidth, "card-width", 0, "card width (0 computes it)")
	f.Float64Var(&opts.card.CardHeight, "card-height", 0, "card height (0 computes it)")
	f.Float64Var(&opts.card.LineHeight, "line-height", statscard.DefaultLineHeight, "distance between stat rows")
	f.Float64Var(&opts.radius, "border-radius", 4.5, "corner radius")
	f.StringVar(&opts.card.Theme, "theme", statscard.DefaultTheme, "color theme (see 'statcard themes')")
	f.StringVar(&opts.card.TitleColor, "title-color", "", "title color override (hex)")
	f.StringVar(&opts.card.TextColor, "text-color", "", "text color override (hex)")
	f.StringVar(&opts.card.IconColor, "icon-color", "", "icon color override (hex)")
	f.StringVar(&opts.card.RingColor, "ring-color", "", "rank ring color override (hex)")
	f.StringVar(&opts.card.BgColor, "bg-color", "", "background override (hex, or angle,hex,hex,... gradient)")
	f.StringVar(&opts.card.BorderColor, "border-color", "", "border color override (hex)")
	f.StringVar(&opts.card.CustomTitle, "custom-title", "", "replace the generated title")
	f.StringVar(&opts.card.NumberFormat, "number-format", statscard.DefaultNumberFormat, "number format: short or long")
	f.StringVar(&opts.card.Locale, "locale", statscard.DefaultLocale, "label language")
	f.StringVar(&opts.card.RankIcon, "rank-icon", statscard.DefaultRankIcon, "rank icon: default, github or percentile")

	_ = cmd.RegisterFlagCompletionFunc("theme", completeThemes)
	_ = cmd.RegisterFlagCompletionFunc("locale", completeLocales)

	return cmd
}

// cardOptions assembles the card options from the parsed flags. Pointer
// options are only set when their flag was given, so defaults stay in one
// place.
func (o *renderOpts) cardOptions(cmd *cobra.Command) statscard.Options {
	card := o.card
	card.Hide = splitList(o.hide)
	card.Show = splitList(o.show)
	card.Locale = strings.ToLower(card.Locale)
	if cmd.Flags().Changed("text-bold") {
		b := o.textBold
		card.TextBold = &b
	}
	if cmd.Flags().Changed("border-radius") {
		r := o.radius
		card.BorderRadius = &r
	}
	return card
}

// runRender renders every input file, several at a time. The first failure
// cancels the remaining renders.
func runRender(ctx context.Context, inputs []string, output string, jobs int, opts statscard.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if output == "-" && len(inputs) > 1 {
		return fmt.Errorf("--output - needs exactly one input, got %d", len(inputs))
	}
	if output != "" && output != "-" && len(inputs) > 1 {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var (
		mu      sync.Mutex
		written []string
	)
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst := outputPath(in, output, len(inputs))
			if err := renderFile(in, dst, opts); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			logger.Debug("rendered", "input", in, "output", dst)
			mu.Lock()
			written = append(written, dst)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if output == "-" {
		return nil
	}
	prog.done(fmt.Sprintf("Rendered %d card(s)", len(written)))
	for _, path := range inputs {
		printFile(outputPath(path, output, len(inputs)))
	}
	return nil
}

// renderFile renders one stats record. The card title falls back to the
// file name when the record has no name.
func renderFile(in, dst string, opts statscard.Options) error {
	stats, err := source.ReadFile(in)
	if err != nil {
		return err
	}
	if stats.Name == "" {
		stats.Name = recordName(in)
	}
	out, err := statscard.Render(stats, opts)
	if err != nil {
		return err
	}
	if dst == "-" {
		_, err = fmt.Fprintln(os.Stdout, out)
		return err
	}
	return os.WriteFile(dst, []byte(out), 0o644)
}

// outputPath places the card for in according to --output.
func outputPath(in, output string, n int) string {
	switch {
	case output == "-":
		return "-"
	case output != "" && n == 1:
		return output
	case output != "":
		return filepath.Join(output, recordName(in)+".svg")
	default:
		return filepath.Join(filepath.Dir(in), recordName(in)+".svg")
	}
}

func recordName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
