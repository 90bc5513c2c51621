package main

import (
	"fmt"
	"io"

	"github.com/espresso-lang/espresso/langserver"
	"github.com/espresso-lang/espresso/parser"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [file]",
	Short: "List the functions and variables declared in a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getEspressoCode(cmd, args)
		if err != nil {
			return err
		}
		return printSymbols(cmd.OutOrStdout(), src)
	},
}

func init() {
	addInputFlags(symbolsCmd)
}

func printSymbols(w io.Writer, src source) error {
	script, err := parser.Parse(src.code, parserOptions(src)...)
	if err != nil {
		return err
	}
	output, err := getOutputJSON(langserver.Symbols(script))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}
