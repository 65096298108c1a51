package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
// Scripts are written to the command's output stream.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for thirdparty.

To load completions:

Bash:
  $ source <(thirdparty completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ thirdparty completion bash > /etc/bash_completion.d/thirdparty
  # macOS:
  $ thirdparty completion bash > $(brew --prefix)/etc/bash_completion.d/thirdparty

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ thirdparty completion zsh > "${fpath[1]}/_thirdparty"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ thirdparty completion fish | source

  # To load completions for each session, execute once:
  $ thirdparty completion fish > ~/.config/fish/completions/thirdparty.fish

PowerShell:
  PS> thirdparty completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> thirdparty completion powershell > thirdparty.ps1
  # and source this file from your PowerShell profile.
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

// completeRepoDir completes the optional repository argument with directories
// only; a Rust workspace root is never a file.
func completeRepoDir(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
