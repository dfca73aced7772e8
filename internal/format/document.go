package format

import (
	"fmt"
	"io"

	"github.com/dmagro/yaci-status/internal/report"
	"github.com/dmagro/yaci-status/internal/status"
)

// Output formats accepted by New.
const (
	OutputTerminal = "terminal"
	OutputJSON     = report.EncodingJSON
	OutputYAML     = report.EncodingYAML
)

// Document renders the outcome as a single JSON or YAML document.
type Document struct {
	w        io.Writer
	encoding string
}

func NewDocument(w io.Writer, encoding string) *Document {
	return &Document{w: w, encoding: encoding}
}

// Start writes nothing: a document is emitted only once the outcome is known.
func (d *Document) Start(string) error { return nil }

func (d *Document) Success(r *status.Report) error {
	return report.Encode(d.w, report.FromReport(r), d.encoding)
}

func (d *Document) Failure(f *status.Failure) error {
	return report.Encode(d.w, report.FromFailure(f), d.encoding)
}

// New returns the renderer for the named output format. Machine formats
// disable colors globally.
func New(output string, w io.Writer) (status.Renderer, error) {
	switch output {
	case "", OutputTerminal:
		return NewTerminal(w), nil
	case OutputJSON, OutputYAML:
		DisableColors()
		return NewDocument(w, output), nil
	default:
		return nil, fmt.Errorf("invalid output format %q (expected %s, %s or %s)",
			output, OutputTerminal, OutputJSON, OutputYAML)
	}
}
