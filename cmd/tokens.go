package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/compiler/lexer"
	"github.com/quill-lang/quill/internal/compiler/token"
)

var TokensCmd = &cobra.Command{
	Use:   "tokens <file.ql>",
	Short: "Dump the token stream for a Quill source file",
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

		lex := lexer.New(string(content))
		if err := lex.Tokenize(); err != nil {
			fmt.Fprintln(os.Stderr, render(errorStyle, "error: "+err.Error()))
			return fmt.Errorf("tokenizing %s failed", filename)
		}

		for tok := lex.CurrentAndAdvance(); tok.Kind != token.KindEOF; tok = lex.CurrentAndAdvance() {
			pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
			fmt.Printf("%s %s\n", render(mutedStyle, pos), tok)
		}
		return nil
	},
}
