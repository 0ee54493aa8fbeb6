package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/card/theme"
)

// themesCommand creates the themes command that lists the color themes.
func (c *CLI) themesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := theme.Names()
			if !pick {
				t := themeTable(names, func(int) string { return "" }).
					StyleFunc(func(row, col int) lipgloss.Style {
						if row == -1 {
							return headerStyle
						}
						return lipgloss.NewStyle()
					})
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				printDetail("%d themes", len(names))
				return nil
			}

			final, err := tea.NewProgram(NewThemeListModel(names), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("theme picker: %w", err)
			}
			selected := final.(ThemeListModel).Selected
			if selected == "" {
				printInfo("No theme selected")
				return nil
			}
			printSuccess("Selected %s", StyleHighlight.Render(selected))
			printNextStep("Render with it", "statcard render --theme "+selected+" stats.toml")
			printNextStep("Or request it", "/api?username=<name>&theme="+selected)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a theme interactively")

	return cmd
}
