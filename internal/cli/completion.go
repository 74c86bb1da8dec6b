package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/viewport"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for viewport.

Bash:
  $ source <(viewport completion bash)

Zsh:
  $ viewport completion zsh > "${fpath[1]}/_viewport"

Fish:
  $ viewport completion fish | source

PowerShell:
  PS> viewport completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// registerValueCompletions offers the fixed vocabularies of --align, --fit
// and --format to shell completion.
func registerValueCompletions(cmd *cobra.Command) {
	aligns := make([]string, len(viewport.Aligns))
	for i, a := range viewport.Aligns {
		aligns[i] = string(a)
	}
	fixed := map[string][]string{
		"align":  aligns,
		"fit":    {"meet", "slice", "none"},
		"format": {formatText, formatJSON, formatSVG},
	}
	for flag, values := range fixed {
		if cmd.Flags().Lookup(flag) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
}
