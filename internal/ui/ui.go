// Package ui prints one-line confirmations to stdout and diagnostics to
// stderr.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	plainStyle   = lipgloss.NewStyle()
)

// Printer writes styled messages. File content is never passed through a
// style; only the messages around it are.
type Printer struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// New creates a Printer. With color false all output is plain text.
func New(out, err io.Writer, color bool) *Printer {
	return &Printer{out: out, err: err, color: color}
}

// Out returns the writer for normal output.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) style(s lipgloss.Style) lipgloss.Style {
	if !p.color {
		return plainStyle
	}
	return s
}

// Success prints a confirmation line to stdout.
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintln(p.out, p.style(successStyle).Render(fmt.Sprintf(format, a...)))
}

// Header prints a heading line to stdout.
func (p *Printer) Header(format string, a ...any) {
	fmt.Fprintln(p.out, p.style(headerStyle).Render(fmt.Sprintf(format, a...)))
}

// Line prints an unstyled line to stdout.
func (p *Printer) Line(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Warning prints a warning to stderr.
func (p *Printer) Warning(format string, a ...any) {
	fmt.Fprintln(p.err, p.style(warningStyle).Render("Warning: "+fmt.Sprintf(format, a...)))
}

// Error prints an error to stderr.
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintln(p.err, p.style(errorStyle).Render("Error: "+fmt.Sprintf(format, a...)))
}
