package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/chatlens/chatlens/pkg/chat"
)

// maxSkippedSamples bounds the sample of unmatched lines kept for diagnostics.
const maxSkippedSamples = 5

// ScanResult is a parse plus diagnostics about what the parse excluded.
// The exclusion of non-matching leading lines is a lossy contract of the
// entry scan; the counts here surface it instead of hiding it.
type ScanResult struct {
	// Messages is the full parsed record set, transcript order.
	Messages []chat.Message

	// TotalLines is the number of non-empty lines in the transcript.
	TotalLines int

	// Entries is the number of matched entries (== len(Messages)).
	Entries int

	// SkippedLines counts non-empty lines before the first matched entry,
	// which the entry scan silently excludes.
	SkippedLines int

	// SkippedSamples holds up to a handful of the skipped lines.
	SkippedSamples []string

	// Senders lists distinct senders in first-encountered order.
	Senders []string

	// First and Last are the first and last entry timestamps in transcript
	// order (zero when the transcript is empty).
	First time.Time
	Last  time.Time
}

// Scan parses a transcript and reports diagnostics alongside the records.
// It fails exactly when Parse fails.
func Scan(raw string, pattern *regexp.Regexp, layout string) (*ScanResult, error) {
	msgs, err := Parse(raw, pattern, layout)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Messages: msgs,
		Entries:  len(msgs),
		Senders:  chat.Senders(msgs),
		First:    msgs[0].Timestamp,
		Last:     msgs[len(msgs)-1].Timestamp,
	}

	norm := normalizeSpaces(raw)
	first := pattern.FindStringIndex(norm)

	for _, line := range strings.Split(norm, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.TotalLines++
	}

	// Everything before the first entry prefix was dropped by the scan.
	if first != nil && first[0] > 0 {
		for _, line := range strings.Split(norm[:first[0]], "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			result.SkippedLines++
			if len(result.SkippedSamples) < maxSkippedSamples {
				result.SkippedSamples = append(result.SkippedSamples, line)
			}
		}
	}

	return result, nil
}
