package main

import (
	"errors"
	"io"
	"os"

	"github.com/espresso-lang/espresso/parser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addInputFlags registers the flags shared by every command that reads a
// script.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("code", "c", "", "Code to read instead of a file")
	cmd.Flags().Bool("stdin", false, "Read code from stdin")
}

// source is a script together with the name used to report errors in it.
type source struct {
	code     string
	filename string
}

func getEspressoCode(cmd *cobra.Command, args []string) (source, error) {
	// Determine what code is to be read. There are three possibilities:
	// 1. --code <code>
	// 2. --stdin (read code from stdin)
	// 3. path as args[0]
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return source{}, errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return source{}, errors.New("multiple input sources specified")
	}
	if stdinFlagSet {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return source{}, err
		}
		return source{code: string(data), filename: "<stdin>"}, nil
	} else if pathSupplied {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return source{}, err
		}
		log.Debug().Str("file", args[0]).Int("bytes", len(bytes)).Msg("read script")
		return source{code: string(bytes), filename: args[0]}, nil
	} else if codeFlagSet {
		code, _ := cmd.Flags().GetString("code")
		return source{code: code, filename: "<code>"}, nil
	}
	return source{}, errors.New("no input provided")
}

// parserOptions returns the parser configuration for src.
func parserOptions(src source) []parser.Option {
	opts := []parser.Option{parser.WithFilename(src.filename)}
	if depth := viper.GetInt("max-depth"); depth > 0 {
		opts = append(opts, parser.WithMaxDepth(depth))
	}
	return opts
}
