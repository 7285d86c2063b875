// Package output provides report shaping and formatting for analysis
// results.
package output

import (
	"time"

	"github.com/chatlens/chatlens/pkg/chat"
	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/stats"
)

// Report is the complete analysis output for one transcript and scope.
type Report struct {
	Summary Summary `json:"summary"`

	Totals          stats.Totals           `json:"totals"`
	BusiestSenders  []stats.SenderCount    `json:"busiest_senders"`
	SenderShares    []stats.SenderShare    `json:"sender_shares"`
	Heatmap         stats.Heatmap          `json:"heatmap"`
	DailyVolume     []stats.VolumePoint    `json:"daily_volume"`
	MonthlyVolume   []stats.VolumePoint    `json:"monthly_volume"`
	TopWords        []stats.WordCount      `json:"top_words"`
	WordFrequencies []stats.WordCount      `json:"word_frequencies"`
	TypeCounts      stats.MessageTypes     `json:"type_counts"`
	Sentiment       []stats.SentimentPoint `json:"sentiment"`
	TopEmojis       []stats.EmojiCount     `json:"top_emojis"`

	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics about the parse itself.
type Summary struct {
	// Messages is the full parsed record count.
	Messages int `json:"messages"`

	// Substantive is the count surviving the substantive filter.
	Substantive int `json:"substantive"`

	// Senders is the number of distinct senders in the transcript.
	Senders int `json:"senders"`

	// SkippedLines counts transcript lines the entry scan excluded.
	SkippedLines int `json:"skipped_lines"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Transcript is the path of the analyzed transcript.
	Transcript string `json:"transcript"`

	// Scope is the analyzed scope: a sender name or "Overall".
	Scope string `json:"scope"`

	// First and Last are the transcript's first and last entry timestamps.
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long parse plus aggregation took.
	Duration time.Duration `json:"duration"`
}

// BuildReport runs every aggregate over a scanned transcript and shapes the
// result for formatting. The scan's record set is never mutated.
func BuildReport(scan *parser.ScanResult, cfg *config.Config, scope, transcript string, started time.Time) *Report {
	msgs := scan.Messages
	token := cfg.MediaPlaceholder

	return &Report{
		Summary: Summary{
			Messages:     len(msgs),
			Substantive:  len(chat.Substantive(msgs, token)),
			Senders:      len(scan.Senders),
			SkippedLines: scan.SkippedLines,
		},
		Totals:          stats.Overall(msgs, scope, token),
		BusiestSenders:  stats.BusiestSenders(msgs, scope, token),
		SenderShares:    stats.SenderShares(msgs, scope),
		Heatmap:         stats.ActivityHeatmap(msgs, scope, token),
		DailyVolume:     stats.DailyVolume(msgs, scope, token),
		MonthlyVolume:   stats.MonthlyVolume(msgs, scope, token),
		TopWords:        stats.TopWords(msgs, scope, token, cfg.TopWords, cfg.ExtraStopwords),
		WordFrequencies: stats.WordFrequencies(msgs, scope, token, cfg.ExtraStopwords),
		TypeCounts:      stats.TypeCounts(msgs, scope, token),
		Sentiment:       stats.SentimentSeries(msgs, scope, token, cfg.SentimentWindow),
		TopEmojis:       stats.TopEmojis(msgs, scope, token, cfg.TopEmojis),
		Metadata: Metadata{
			Transcript: transcript,
			Scope:      scope,
			First:      scan.First,
			Last:       scan.Last,
			AnalyzedAt: time.Now(),
			Duration:   time.Since(started),
		},
	}
}
