package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/espresso-lang/espresso/errors"
	"github.com/espresso-lang/espresso/langserver"
	"github.com/espresso-lang/espresso/parser"
	"github.com/fatih/color"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check a script for syntax errors",
	Long: `Check a script for syntax errors.

Parsing stops at the first error. With -o lsp the result is printed as a
list of language server diagnostics. The exit status is 1 when an error
was found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getEspressoCode(cmd, args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("output")
		ok, err := lint(cmd.OutOrStdout(), src, format)
		if err != nil {
			return err
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	addInputFlags(lintCmd)
	lintCmd.Flags().StringP("output", "o", "text", "Output format: text or lsp")
}

// lint parses src and writes its diagnostics to w. It reports whether the
// script is free of errors.
func lint(w io.Writer, src source, format string) (bool, error) {
	_, parseErr := parser.Parse(src.code, parserOptions(src)...)
	switch strings.ToLower(format) {
	case "", "text":
		if parseErr == nil {
			fmt.Fprintf(w, "%s: ok\n", src.filename)
			return true, nil
		}
		if ferr, ok := parseErr.(errors.FormattableError); ok {
			fmt.Fprint(w, errors.NewFormatter(!color.NoColor).Format(ferr.ToFormatted()))
		} else {
			fmt.Fprintln(w, parseErr.Error())
		}
	case "lsp":
		output, err := getOutputJSON(protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(src.filename),
			Diagnostics: langserver.Diagnostics(parseErr),
		})
		if err != nil {
			return false, err
		}
		fmt.Fprintln(w, string(output))
	default:
		return false, fmt.Errorf("unknown output format: %s", format)
	}
	return parseErr == nil, nil
}
