package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/espresso-lang/espresso/ast"
	"github.com/espresso-lang/espresso/parser"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/peterh/liner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".espresso_history"
	promptMain  = "espresso> "
	promptCont  = "      ... "
)

const replHelp = `Enter Espresso code to see its syntax tree. Input continues on the next
line while a group or expression is unfinished.

Commands:
  :dump    print trees in constructor notation (default)
  :string  print trees as regenerated source code
  :help    show this message
  :quit    exit the REPL
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parser session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// replSession holds the state of the REPL that is independent of the
// terminal: the current output mode and the pending unfinished input.
type replSession struct {
	mode    string
	pending []string
}

func newReplSession() *replSession {
	return &replSession{mode: "dump"}
}

// prompt returns the prompt for the next line of input.
func (s *replSession) prompt() string {
	if len(s.pending) > 0 {
		return promptCont
	}
	return promptMain
}

// input handles one line. It returns the text to print and whether the
// session should end.
func (s *replSession) input(line string) (string, bool) {
	if len(s.pending) == 0 {
		switch strings.TrimSpace(line) {
		case "":
			return "", false
		case ":quit", ":exit":
			return "", true
		case ":help":
			return replHelp, false
		case ":dump", ":string":
			s.mode = strings.TrimPrefix(strings.TrimSpace(line), ":")
			return fmt.Sprintf("output mode: %s\n", s.mode), false
		}
	}

	s.pending = append(s.pending, line)
	code := strings.Join(s.pending, "\n")
	script, err := parser.Parse(code, parserOptions(source{filename: "<repl>"})...)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) && syntaxErr.Incomplete() {
			log.Debug().Int("lines", len(s.pending)).Msg("input incomplete")
			return "", false
		}
		s.pending = nil
		return errorText(err) + "\n", false
	}
	s.pending = nil

	var out strings.Builder
	if s.mode == "string" {
		out.WriteString(script.String())
	} else {
		for _, stmt := range script.Items {
			out.WriteString(ast.Dump(stmt))
			out.WriteString("\n")
		}
	}
	return out.String(), false
}

// reset drops any unfinished input.
func (s *replSession) reset() {
	s.pending = nil
}

func runRepl(in io.Reader, out io.Writer) error {
	session := newReplSession()
	if in != os.Stdin || !isTerminalIO() {
		return runPlainRepl(session, in, out)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath := ""
	if home, err := homedir.Dir(); err == nil {
		historyPath = filepath.Join(home, historyFile)
		if f, err := os.Open(historyPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if historyPath == "" {
			return
		}
		if f, err := os.Create(historyPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		} else {
			log.Debug().Err(err).Str("file", historyPath).Msg("failed to save history")
		}
	}()

	fmt.Fprintf(out, "Espresso %s\n", color.New(color.Bold).Sprint(version))
	fmt.Fprintln(out, "Type :help for commands, Ctrl+D to exit.")

	for {
		line, err := ln.Prompt(session.prompt())
		if err == liner.ErrPromptAborted {
			session.reset()
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		text, quit := session.input(line)
		fmt.Fprint(out, text)
		if quit {
			return nil
		}
	}
}

// runPlainRepl reads lines without line editing, for piped input.
func runPlainRepl(session *replSession, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		text, quit := session.input(line)
		fmt.Fprint(out, text)
		if quit {
			return nil
		}
	}
	if len(session.pending) > 0 {
		return errors.New("unexpected end of input")
	}
	return nil
}
