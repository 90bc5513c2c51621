package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/espresso-lang/espresso/parser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Format Espresso source code",
	Long: `Format Espresso source code.

The script is parsed and printed back from its syntax tree with one top level
statement per line. Comments and original spacing are not preserved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := getEspressoCode(cmd, args)
		if err != nil {
			return err
		}
		formatted, err := formatSource(src)
		if err != nil {
			return err
		}
		if write, _ := cmd.Flags().GetBool("write"); write {
			if len(args) == 0 {
				return errors.New("--write requires a file argument")
			}
			log.Debug().Str("file", args[0]).Msg("writing formatted source")
			return os.WriteFile(args[0], []byte(formatted), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	},
}

func init() {
	addInputFlags(fmtCmd)
	fmtCmd.Flags().BoolP("write", "w", false, "Write result to the source file")
}

func formatSource(src source) (string, error) {
	script, err := parser.Parse(src.code, parserOptions(src)...)
	if err != nil {
		return "", err
	}
	return script.String(), nil
}
