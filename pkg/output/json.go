package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/chatlens/chatlens/pkg/stats"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just summary and totals
		return encoder.Encode(struct {
			Summary Summary      `json:"summary"`
			Totals  stats.Totals `json:"totals"`
		}{report.Summary, report.Totals})
	}

	return encoder.Encode(report)
}
