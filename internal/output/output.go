// Package output renders CLI messages and parameter listings with fatih/color.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	maskedPrefixLen = 4
	maskRune        = "•"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Output writers (can be overridden for testing)
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	// Disable colors if not TTY or NO_COLOR is set
	noColor = os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
)

func init() {
	if noColor {
		color.NoColor = true
	}
}

// Success prints a success message with a checkmark
// Example: ✓ 2 parameters written to /slack_bot/xoxb-1
func Success(format string, a ...any) {
	fmt.Fprintf(Stdout, green.Sprint("✓")+" "+format+"\n", a...)
}

// Info prints an informational message with an arrow
// Example: → Reading parameters under /feedback
func Info(format string, a ...any) {
	fmt.Fprintf(Stdout, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warning prints a warning message with a warning symbol
func Warning(format string, a ...any) {
	fmt.Fprintf(Stdout, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Error prints an error message with an X symbol to Stderr
func Error(format string, a ...any) {
	fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Fatal prints an error message and exits with code 1
func Fatal(format string, a ...any) {
	Error(format, a...)
	os.Exit(1)
}

// Header prints a section header with a separator line
func Header(text string) {
	fmt.Fprintln(Stdout)
	fmt.Fprintln(Stdout, bold.Sprint(text))
	fmt.Fprintln(Stdout, gray.Sprint(strings.Repeat("━", 50)))
}

// KeyValue prints a key-value pair with indentation
// Example:   channel: #feedback
func KeyValue(key, value string) {
	fmt.Fprintf(Stdout, "  %s: %s\n", gray.Sprint(key), value)
}

// Println prints a plain line without any formatting
func Println(a ...any) {
	fmt.Fprintln(Stdout, a...)
}

// Bold prints text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Table prints a simple table with headers
// Example:
// Key          Value
// ───          ─────
// channel      #feedback
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	// pad before colouring so escape codes do not skew the widths
	for i, h := range headers {
		fmt.Fprintf(Stdout, "%s  ", bold.Sprint(pad(h, widths[i])))
	}
	fmt.Fprintln(Stdout)

	for i := range headers {
		fmt.Fprintf(Stdout, "%s  ", gray.Sprint(strings.Repeat("─", widths[i])))
	}
	fmt.Fprintln(Stdout)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(Stdout, "%s  ", pad(cell, widths[i]))
			}
		}
		fmt.Fprintln(Stdout)
	}
}

// ParamTable prints a parameter map sorted by key. Values are masked unless reveal is set.
func ParamTable(values map[string]string, reveal bool) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		v := values[k]
		if !reveal {
			v = MaskSecret(v)
		}
		rows = append(rows, []string{k, v})
	}
	Table([]string{"Key", "Value"}, rows)
}

// MaskSecret keeps the first few characters of value and masks the rest.
// Short values are masked entirely.
func MaskSecret(value string) string {
	runes := []rune(value)
	if len(runes) <= maskedPrefixLen*2 {
		return strings.Repeat(maskRune, len(runes))
	}
	return string(runes[:maskedPrefixLen]) + strings.Repeat(maskRune, len(runes)-maskedPrefixLen)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, _ := f.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
