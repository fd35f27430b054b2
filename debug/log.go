package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/format-json/encode"
	"github.com/signadot/format-json/ir"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const prefix = "format_json: "

var (
	out      io.Writer = os.Stderr
	colorOut           = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

func colorize(attr color.Attribute, s string) string {
	if !colorOut {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = strings.TrimSuffix(buf.String(), "\n")
		default:
		}
	}
	fmt.Fprint(out, colorize(color.FgMagenta, prefix))
	fmt.Fprintf(out, msg, args...)
}

// LogDiff logs a character level diff between from and to, which are
// the contents of name before and after rewriting.
func LogDiff(name, from, to string) {
	if from == to {
		Logf("%s: unchanged\n", name)
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, strings.Contains(from, "\n"))
	diffs = dmp.DiffCleanupSemantic(diffs)
	Logf("%s: rewritten\n%s\n", name, renderDiff(diffs))
}

func renderDiff(diffs []diffpatch.Diff) string {
	buf := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			if colorOut {
				buf.WriteString(colorize(color.FgGreen, diff.Text))
			} else {
				buf.WriteString("{+" + diff.Text + "+}")
			}
		case diffpatch.DiffDelete:
			if colorOut {
				buf.WriteString(colorize(color.FgRed, diff.Text))
			} else {
				buf.WriteString("[-" + diff.Text + "-]")
			}
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String()
}
