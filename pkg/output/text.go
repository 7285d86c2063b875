package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04"
)

// weekdayHeaders labels the heatmap columns, Monday first.
var weekdayHeaders = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	f.formatHeader(report, w)
	if f.opts.Quiet {
		return nil
	}

	f.formatSenders(report, w)
	f.formatVolume(report, w)
	f.formatHeatmap(report, w)
	f.formatWords(report, w)
	f.formatEmojis(report, w)
	f.formatSentiment(report, w)

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Analyzed %s in %s (scope: %s)\n",
		report.Metadata.Transcript, report.Metadata.Duration.Round(time.Millisecond), report.Metadata.Scope)
	return nil
}

func (f *TextFormatter) formatHeader(report *Report, w io.Writer) {
	fmt.Fprintln(w, "=== Chat Analysis Report ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Messages:    %d (%d substantive, %d senders)\n",
		report.Summary.Messages, report.Summary.Substantive, report.Summary.Senders)
	fmt.Fprintf(w, "Words:       %d\n", report.Totals.Words)
	fmt.Fprintf(w, "Media:       %d\n", report.Totals.Media)
	fmt.Fprintf(w, "Emojis:      %d\n", report.Totals.Emojis)
	fmt.Fprintf(w, "Links:       %d\n", report.Totals.Links)
	if !report.Metadata.First.IsZero() {
		fmt.Fprintf(w, "Range:       %s to %s\n",
			report.Metadata.First.Format(dateTimeFormat), report.Metadata.Last.Format(dateTimeFormat))
	}
	if report.Summary.SkippedLines > 0 {
		fmt.Fprintf(w, "Warning:     %d line(s) did not match the entry format and were skipped\n",
			report.Summary.SkippedLines)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatSenders(report *Report, w io.Writer) {
	if len(report.BusiestSenders) > 0 {
		fmt.Fprintln(w, "Busiest senders (substantive messages):")
		for i, sc := range report.BusiestSenders {
			fmt.Fprintf(w, "  %2d. %-24s %d\n", i+1, sc.Sender, sc.Count)
		}
		fmt.Fprintln(w)
	}

	if len(report.SenderShares) > 0 {
		fmt.Fprintln(w, "Message share:")
		for _, ss := range report.SenderShares {
			fmt.Fprintf(w, "  %-28s %s\n", ss.Sender, ss.Percent)
		}
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) formatVolume(report *Report, w io.Writer) {
	fmt.Fprintf(w, "Message types: %d text / %d media / %d with links\n\n",
		report.TypeCounts.Text, report.TypeCounts.Media, report.TypeCounts.Links)

	if len(report.MonthlyVolume) > 0 {
		fmt.Fprintln(w, "Monthly volume (substantive):")
		for _, p := range report.MonthlyVolume {
			fmt.Fprintf(w, "  %s  %d\n", p.Date.Format("Jan 2006"), p.Count)
		}
		fmt.Fprintln(w)
	}
}

func (f *TextFormatter) formatHeatmap(report *Report, w io.Writer) {
	fmt.Fprintln(w, "Activity heatmap (hour x weekday):")
	fmt.Fprintf(w, "      %s\n", strings.Join(weekdayHeaders[:], "  "))
	for hour := 0; hour < 24; hour++ {
		row := report.Heatmap[hour]
		empty := true
		for _, c := range row {
			if c > 0 {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		fmt.Fprintf(w, "  %02d:", hour)
		for _, c := range row {
			fmt.Fprintf(w, " %4d", c)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatWords(report *Report, w io.Writer) {
	if len(report.TopWords) == 0 {
		return
	}
	fmt.Fprintln(w, "Top words:")
	for _, wc := range report.TopWords {
		fmt.Fprintf(w, "  %-20s %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatEmojis(report *Report, w io.Writer) {
	if len(report.TopEmojis) == 0 {
		return
	}
	fmt.Fprintln(w, "Top emojis:")
	for _, ec := range report.TopEmojis {
		fmt.Fprintf(w, "  %s  %d\n", ec.Emoji, ec.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatSentiment(report *Report, w io.Writer) {
	if len(report.Sentiment) == 0 {
		return
	}
	fmt.Fprintln(w, "Sentiment (window mean, -1..+1):")
	for _, sp := range report.Sentiment {
		fmt.Fprintf(w, "  %s  %+.3f\n", sp.Bucket.Format(dateFormat), sp.Mean)
	}
	fmt.Fprintln(w)
}
