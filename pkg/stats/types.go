// Package stats provides the descriptive analytics computed over parsed
// chat transcripts. Every function is a pure, stateless query over a
// message set, scoped to one sender or chat.ScopeOverall; an empty scoped
// set yields well-typed zero results, never a panic.
package stats

import "time"

// Totals is the headline counter set for a scope.
type Totals struct {
	// Messages counts the full scoped set.
	Messages int `json:"messages"`

	// Words counts whitespace-separated tokens over substantive bodies.
	Words int `json:"words"`

	// Media counts messages carrying the media placeholder (full set).
	Media int `json:"media"`

	// Emojis counts individual emoji occurrences over substantive bodies.
	Emojis int `json:"emojis"`

	// Links counts URL occurrences over the full set, not deduplicated.
	Links int `json:"links"`
}

// SenderCount is one row of the busiest-senders ranking.
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// SenderShare is one sender's percentage share of total messages,
// pre-formatted to two decimal places with a trailing percent sign.
type SenderShare struct {
	Sender  string `json:"sender"`
	Percent string `json:"percent"`
}

// Heatmap is the hour-of-day (0-23) by weekday (Monday..Sunday) matrix of
// substantive message counts. Cells with no messages are 0, never absent.
type Heatmap [24][7]int

// VolumePoint is one bucket of a dense calendar time series.
type VolumePoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// WordCount is one row of a token frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// EmojiCount is one row of the emoji frequency table.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// MessageTypes partitions a scope's messages for the type breakdown.
// Text+Media always equals the scope's total message count; Links counts
// messages containing "http" and overlaps Text.
type MessageTypes struct {
	Text  int `json:"text"`
	Media int `json:"media"`
	Links int `json:"links"`
}

// SentimentPoint is one window of the rolling sentiment series. Unlike the
// volume series this one is sparse: windows without messages emit no point.
type SentimentPoint struct {
	Bucket time.Time `json:"bucket"`
	Mean   float64   `json:"mean"`
}
