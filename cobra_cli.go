package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
doccov reports documentation coverage for a source tree: the fraction of
function-like declarations preceded by a /// documentation comment within a
fixed number of lines. It prints one line per scanned file plus an overall
summary, and includes:

  • Configurable extension, lookback window, and strict/lenient error mode
  • Optional defaults from a doccov.toml config file
  • Shell completion generation for bash, zsh, fish, and PowerShell
  • A gen-docs helper that can emit Markdown reference docs for the CLI itself

Point doccov at a package's source directory and read the percentages, or wire
it into CI with --strict to catch unreadable files.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "doccov [flags] [path]",
		Short:         "Report documentation coverage for a source tree",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.ext, "ext", "e", defaultExt, "source file extension to scan")
	flags.IntVarP(&app.opts.lookback, "lookback", "l", defaultLookback, "lines searched above a declaration for ///")
	flags.BoolVar(&app.opts.strict, "strict", false, "abort on the first unreadable file instead of skipping it")
	flags.StringVar(&app.opts.configPath, "config", "", "TOML config file (default doccov.toml when present)")
	flags.BoolVar(&app.opts.noColor, "no-color", false, "disable coverage coloring")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(args, cmd.ErrOrStderr(), cmd.Flags().Changed)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for doccov.

The output should be evaluated by your shell. For example:

  # bash
  doccov completion bash > /usr/local/etc/bash_completion.d/doccov

  # zsh
  doccov completion zsh > "${fpath[1]}/_doccov"

  # fish
  doccov completion fish | source

  # PowerShell
  doccov completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  doccov gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
