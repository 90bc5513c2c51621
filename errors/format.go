package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders a FormattedError as a header, the location, the
// offending source line with carets, and optional hint and note lines:
//
//	syntax error[E1003]: expected GroupClose{)}, got EOF{}
//	  --> main.esp:1:7
//	   |
//	 1 | f(1, 2
//	   |       ^
//	   |
//	   = hint: add the missing ")"
//	   = note: "(" opened at line 1, column 2
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	styleKind     = color.New(color.FgHiRed, color.Bold)
	styleMessage  = color.New(color.FgRed)
	styleGutter   = color.New(color.FgHiBlack)
	styleLocation = color.New(color.FgCyan)
	styleSource   = color.New(color.FgWhite)
	styleCaret    = color.New(color.FgHiRed)
	styleHint     = color.New(color.FgHiYellow)
	styleNote     = color.New(color.FgHiBlue)
)

// FormattedError is an error broken into the parts the Formatter displays.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "syntax error"; empty means "error"
	Message     string
	Filename    string
	Line        int // 1-based; zero when unknown
	Column      int // 1-based; zero when unknown
	EndColumn   int // last underlined column on the main line
	SourceLines []SourceLineEntry
	Hint        string // suggested fix
	Note        string // related location or context
}

// SourceLineEntry is one numbered line of source shown under the header.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // the line the carets point into
}

// Format renders err. Colors are applied only when UseColor is set.
func (f *Formatter) Format(err *FormattedError) string {
	w := &errorWriter{f: f, gutter: 2}
	if err.Line >= 100 {
		w.gutter = len(fmt.Sprint(err.Line))
	}

	w.header(err)
	w.location(err)
	w.source(err)
	if err.Hint != "" {
		w.blankGutter()
		w.annotation(styleHint, "hint", err.Hint)
	}
	if err.Note != "" {
		w.annotation(styleNote, "note", err.Note)
	}
	return w.b.String()
}

// errorWriter accumulates the output of a single Format call. gutter is the
// width of the line number column.
type errorWriter struct {
	f      *Formatter
	b      strings.Builder
	gutter int
}

func (w *errorWriter) paint(style *color.Color, s string) {
	if w.f.UseColor {
		s = style.Sprint(s)
	}
	w.b.WriteString(s)
}

// margin writes the gutter followed by sep, e.g. "   | ".
func (w *errorWriter) margin(sep string) {
	w.paint(styleGutter, strings.Repeat(" ", w.gutter)+sep)
}

func (w *errorWriter) blankGutter() {
	w.margin(" |")
	w.b.WriteString("\n")
}

func (w *errorWriter) header(err *FormattedError) {
	kind := err.Kind
	if kind == "" {
		kind = "error"
	}
	w.paint(styleKind, kind)
	if err.Code != "" {
		w.paint(styleGutter, "["+string(err.Code)+"]")
	}
	w.paint(styleMessage, ": ")
	w.b.WriteString(err.Message)
	w.b.WriteString("\n")
}

func (w *errorWriter) location(err *FormattedError) {
	var loc string
	switch {
	case err.Filename != "" && err.Line > 0:
		loc = fmt.Sprintf("%s:%d:%d", err.Filename, err.Line, err.Column)
	case err.Filename != "":
		loc = err.Filename
	case err.Line > 0:
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	default:
		return
	}
	w.margin("--> ")
	w.paint(styleLocation, loc)
	w.b.WriteString("\n")
}

func (w *errorWriter) source(err *FormattedError) {
	if len(err.SourceLines) == 0 {
		return
	}
	w.blankGutter()
	for _, line := range err.SourceLines {
		w.paint(styleGutter, fmt.Sprintf("%*d | ", w.gutter, line.Number))
		w.paint(styleSource, line.Text)
		w.b.WriteString("\n")
		if line.IsMain && err.Column > 0 {
			w.carets(err)
		}
	}
}

// carets underlines Column through EndColumn of the main line.
func (w *errorWriter) carets(err *FormattedError) {
	width := 1
	if err.EndColumn > err.Column {
		width = err.EndColumn - err.Column + 1
	}
	w.margin(" | ")
	w.b.WriteString(strings.Repeat(" ", err.Column-1))
	w.paint(styleCaret, strings.Repeat("^", width))
	w.b.WriteString("\n")
}

func (w *errorWriter) annotation(style *color.Color, label, text string) {
	w.margin(" = ")
	w.paint(style, label+": ")
	w.b.WriteString(text)
	w.b.WriteString("\n")
}
