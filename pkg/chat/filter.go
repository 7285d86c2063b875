package chat

import "strings"

// Substantive returns the subset of messages that carry analyzable text:
// media-placeholder messages, empty bodies, and lone "." or "?" bodies are
// excluded. Order is preserved and the input is never mutated.
//
// The result feeds the word/sentiment/emoji/time-series analytics; raw
// totals and media/link counts operate on the full set instead.
func Substantive(msgs []Message, mediaToken string) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if IsSubstantive(m, mediaToken) {
			out = append(out, m)
		}
	}
	return out
}

// IsSubstantive reports whether a single message survives Substantive.
func IsSubstantive(m Message, mediaToken string) bool {
	if mediaToken != "" && strings.Contains(m.Body, mediaToken) {
		return false
	}
	switch m.Body {
	case "", ".", "?":
		return false
	}
	return true
}
