package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/internal/compiler/diagnostics"
	"github.com/quill-lang/quill/internal/compiler/lexer"
	"github.com/quill-lang/quill/internal/compiler/parser"
	"github.com/quill-lang/quill/internal/compiler/scope"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Quill session",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Quill REPL. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

		home, _ := os.UserHomeDir()
		histPath := filepath.Join(home, cfg.REPL.HistoryFile)

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()

		// One global block for the whole session, so mutability state
		// carries across lines.
		global := scope.NewBlock()

		for {
			line, err := ln.Prompt(cfg.REPL.Prompt)
			if err == liner.ErrPromptAborted {
				continue
			}
			if err != nil { // io.EOF on Ctrl+D
				fmt.Println()
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			if strings.TrimSpace(line) == ":quit" {
				return nil
			}

			evalLine(line, global)
			ln.AppendHistory(line)
		}
	},
}

func evalLine(line string, global *scope.Block) {
	diags := diagnostics.NewCollector()
	p := parser.New(lexer.New(line), diags)

	start := len(global.Statements)
	err := p.ParseInto(global)

	for _, stmt := range global.Statements[start:] {
		fmt.Println(render(resultStyle, stmt.String()))
	}
	for _, w := range diags.Drain() {
		fmt.Fprintln(os.Stderr, render(warnStyle, "warning: "+w.Message))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, render(errorStyle, "error: "+err.Error()))
	}
}
