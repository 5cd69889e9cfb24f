package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type printer struct {
	errOut io.Writer
	color  bool

	red, green *color.Color
}

func newPrinter(cfg *MainConfig) *printer {
	p := &printer{
		errOut: cfg.errOut,
		color:  cfg.useColor(),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
	}
	if p.color {
		p.red.EnableColor()
		p.green.EnableColor()
	} else {
		p.red.DisableColor()
		p.green.DisableColor()
	}
	return p
}

func (p *printer) errorf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.red.Sprintf(format, args...))
}

// diff writes a line based diff of before and after to w. Removed lines are
// prefixed with "-", added lines with "+".
func (p *printer) diff(w io.Writer, before, after string) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffInsert:
				fmt.Fprintln(w, p.green.Sprint("+"+line))
			case diffpatch.DiffDelete:
				fmt.Fprintln(w, p.red.Sprint("-"+line))
			case diffpatch.DiffEqual:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
