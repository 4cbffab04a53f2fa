// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

// Printer writes user-facing output with a colored status marker per line.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Info(format string, args ...any) {
	p.line(infoColor("[*]"), format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.line(successColor("[+]"), format, args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.line(warningColor("[!]"), format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(errorColor("[-]"), format, args...)
}

// Plain writes s unchanged followed by a newline. Recovered messages go
// through here so they can be piped without markers.
func (p *Printer) Plain(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Printer) line(marker, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", marker, fmt.Sprintf(format, args...))
}
