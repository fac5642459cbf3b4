package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/cli/config"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill CLI — parser, token dumper, and REPL",
	Long: `Quill is the front end for the Quill scripting language.

Commands:
  parse   Parse a (.ql) Quill source file and print its AST
  tokens  Dump the token stream for a (.ql) Quill source file
  repl    Start an interactive session
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "quill.toml", "path to the config file")

	rootCmd.AddCommand(ParseCmd, TokensCmd, ReplCmd)
}
