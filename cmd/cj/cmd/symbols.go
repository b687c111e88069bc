package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/cj/internal/cangjie"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the punctuation reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		printSymbols(cmd.OutOrStdout(), cangjie.Default().Symbols())
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the radical of each key, grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		printKeys(cmd.OutOrStdout(), cangjie.Categories())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(keysCmd)
}

func printSymbols(w io.Writer, symbols []cangjie.Symbol) {
	for _, s := range symbols {
		fmt.Fprintf(w, "%s  %-5s %s\n", runewidth.FillRight(s.Char, 2), s.Code, s.Label)
	}
}

func printKeys(w io.Writer, groups []cangjie.KeyGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Category)
		for _, k := range g.Keys {
			fmt.Fprintf(w, "  %c  %s\n", k.Key, k.Glyph)
		}
	}
}
