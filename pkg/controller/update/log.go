package update

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

// Output writes a changed span as a "- old" / "+ new" pair.
func (l *Logger) Output(message, file string, d *LineDiff) {
	fmt.Fprintf(l.stderr, `INFO %s
%s:%d
%s
%s
`, message, file, d.Number, l.red(prefixLines("- ", d.Old)), l.green(prefixLines("+ ", d.New)))
}

func prefixLines(prefix, s string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
