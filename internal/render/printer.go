package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	applog "gastos/internal/log"
)

// markdownRenderer is the part of glamour.TermRenderer the printer uses.
type markdownRenderer interface {
	Render(in string) (string, error)
}

// Printer writes Markdown to a terminal.
type Printer struct {
	out    io.Writer
	style  string
	term   markdownRenderer
	logger *applog.Logger
}

// NewPrinter returns a printer for one of the glamour standard styles,
// "auto" to detect the terminal background, or "plain" for raw Markdown.
func NewPrinter(out io.Writer, style string, logger *applog.Logger) (*Printer, error) {
	if logger == nil {
		logger = applog.Default()
	}
	p := &Printer{out: out, style: style, logger: logger.WithComponent(applog.ComponentRender)}
	if style == "plain" || style == "" {
		return p, nil
	}

	opt := glamour.WithStandardStyle(style)
	if style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	term, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", style, err)
	}
	p.term = term
	return p, nil
}

// Print renders md. If styling fails the raw Markdown is printed instead.
func (p *Printer) Print(md string) error {
	if p.term != nil {
		styled, err := p.term.Render(md)
		if err != nil {
			p.logger.Warn("Markdown styling failed, printing raw text",
				applog.NewFields().
					WithOperation(applog.OpRender).
					WithErrorType(applog.ErrorTypeInternal).
					WithError(err).
					ToSlice()...)
		} else {
			md = styled
		}
	}
	_, err := io.WriteString(p.out, md)
	return err
}
