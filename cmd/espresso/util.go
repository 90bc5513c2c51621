package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/espresso-lang/espresso/errors"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	red            = color.New(color.FgRed).SprintFunc()
	envKeyReplacer = strings.NewReplacer("-", "_")
)

// fatal prints msg to stderr and exits. Errors that carry source context are
// printed in their friendly form.
func fatal(msg interface{}) {
	fmt.Fprintln(os.Stderr, errorText(msg))
	os.Exit(1)
}

func errorText(msg interface{}) string {
	switch msg := msg.(type) {
	case string:
		return red(msg)
	case errors.FormattableError:
		return errors.NewFormatter(!color.NoColor).Format(msg.ToFormatted())
	case error:
		return red(msg.Error())
	default:
		return red(fmt.Sprintf("%v", msg))
	}
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

var outputFormatsCompletion = []string{"dump", "string", "json"}

func getOutputJSON(v interface{}) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: color.NoColor || !isatty.IsTerminal(os.Stderr.Fd()),
	})
}
