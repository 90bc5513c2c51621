package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/espresso-lang/espresso/tokenizer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getEspressoCode(cmd, args)
		if err != nil {
			return err
		}
		var config tokenizer.Config
		config.Comment, _ = cmd.Flags().GetBool("comments")
		config.Range, _ = cmd.Flags().GetBool("range")
		config.Loc, _ = cmd.Flags().GetBool("loc")
		format, _ := cmd.Flags().GetString("output")
		return printTokens(cmd.OutOrStdout(), src, config, format)
	},
}

func init() {
	addInputFlags(tokensCmd)
	tokensCmd.Flags().Bool("comments", false, "Include comments")
	tokensCmd.Flags().Bool("range", false, "Include byte offset ranges")
	tokensCmd.Flags().Bool("loc", false, "Include line and column locations")
	tokensCmd.Flags().StringP("output", "o", "text", "Output format: text or json")
}

func readTokens(src source, config tokenizer.Config) ([]tokenizer.Entry, error) {
	t := tokenizer.New(src.code, config)
	t.SetFilename(src.filename)
	entries := []tokenizer.Entry{}
	for {
		entry, err := t.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return entries, nil
		}
		entries = append(entries, *entry)
	}
}

func printTokens(w io.Writer, src source, config tokenizer.Config, format string) error {
	entries, err := readTokens(src, config)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "", "text":
		for _, e := range entries {
			fmt.Fprintf(w, "%-12s %q", e.Type, e.Value)
			if e.Range != nil {
				fmt.Fprintf(w, " [%d, %d)", e.Range[0], e.Range[1])
			}
			if e.Loc != nil {
				fmt.Fprintf(w, " %d:%d-%d:%d", e.Loc.Start.Line, e.Loc.Start.Column, e.Loc.End.Line, e.Loc.End.Column)
			}
			fmt.Fprintln(w)
		}
	case "json":
		output, err := getOutputJSON(entries)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}
