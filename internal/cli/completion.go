package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/card/i18n"
	"github.com/matzehuels/statcard/pkg/card/theme"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for statcard.

To load completions:

Bash:
  $ source <(statcard completion bash)

  # To load completions for each session, execute once:
  $ statcard completion bash > /etc/bash_completion.d/statcard

Zsh:
  $ statcard completion zsh > "${fpath[1]}/_statcard"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ statcard completion fish > ~/.config/fish/completions/statcard.fish

PowerShell:
  PS> statcard completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeThemes completes --theme with the built-in theme names.
func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(theme.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLocales completes --locale with the locales that have labels.
func completeLocales(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(i18n.Default().Locales(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func withPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
