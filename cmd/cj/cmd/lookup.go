package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/f3rmion/cj/internal/cangjie"
	"github.com/f3rmion/cj/internal/reading"
	"github.com/f3rmion/cj/internal/resolver"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <character>",
	Short: "Look up the Cangjie code of a character",
	Long: `Look up a character and display its:
  - Cangjie code
  - Radical of each key
  - Pinyin reading (for Han characters)

Only the first character of the argument is used.

Example:
  cj lookup 我
  cj lookup 、 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var lookupJSON bool

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the result as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	r, err := newResolver(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}

	res, src, err := r.ResolveSource(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Fprintln(os.Stderr, "Nothing to look up")
		return nil
	}

	if lookupJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	printResult(cmd.OutOrStdout(), res, src, reading.NewParser())
	return nil
}

func writeJSON(w io.Writer, res *cangjie.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printResult(w io.Writer, res *cangjie.Result, src resolver.Source, p *reading.Parser) {
	fmt.Fprintf(w, "Character: %s\n", res.Char)
	fmt.Fprintf(w, "  Code:     %s\n", res.Code)
	fmt.Fprintf(w, "  Radicals: %s\n", strings.Join(res.Radicals, " "))
	if hint := p.Hint(res.Char); hint != "" {
		fmt.Fprintf(w, "  Pinyin:   %s\n", hint)
		fmt.Fprintf(w, "  Tones:    %s\n", strings.Join(p.Numbered(res.Char), " / "))
	}
	fmt.Fprintf(w, "  Source:   %s\n", src)
}
