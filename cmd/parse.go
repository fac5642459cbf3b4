package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/compiler/diagnostics"
	"github.com/quill-lang/quill/internal/compiler/lexer"
	"github.com/quill-lang/quill/internal/compiler/parser"
)

var ParseCmd = &cobra.Command{
	Use:   "parse <file.ql>",
	Short: "Parse a Quill source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		if filepath.Ext(filename) != ".ql" {
			return fmt.Errorf("file must have a .ql extension")
		}

		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		diags := diagnostics.NewCollector()
		p := parser.New(lexer.New(string(content)), diags)
		program, parseErr := p.Parse()

		if parseErr == nil {
			for _, stmt := range program.Statements {
				fmt.Println(render(resultStyle, stmt.String()))
			}
		}
		for _, w := range diags.Drain() {
			fmt.Fprintln(os.Stderr, render(warnStyle, "warning: "+w.Message))
		}
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, render(errorStyle, "error: "+parseErr.Error()))
			return fmt.Errorf("parsing %s failed", filename)
		}
		return nil
	},
}
