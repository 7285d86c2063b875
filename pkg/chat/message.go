// Package chat defines the transcript domain model shared by the parser and
// the analytics layer.
package chat

import "time"

// GroupNotification is the sentinel sender assigned to system/group event
// entries that carry no "sender: body" structure.
const GroupNotification = "group_notification"

// ScopeOverall selects all senders when scoping analytics.
const ScopeOverall = "Overall"

// Message is a single parsed transcript entry.
type Message struct {
	// Timestamp is the entry's date and time, minute resolution.
	Timestamp time.Time `json:"timestamp"`

	// Sender is the free-text sender identifier, or GroupNotification
	// for system entries.
	Sender string `json:"sender"`

	// Body is the raw message text. May contain a media placeholder
	// token, URLs, emoji, or be empty.
	Body string `json:"body"`
}

// Scoped returns the subset of messages for the given scope.
// ScopeOverall returns the input slice unchanged; any other scope selects
// that sender's messages, order preserved. The input is never mutated.
func Scoped(msgs []Message, scope string) []Message {
	if scope == ScopeOverall {
		return msgs
	}
	out := make([]Message, 0)
	for _, m := range msgs {
		if m.Sender == scope {
			out = append(out, m)
		}
	}
	return out
}

// Senders returns the distinct sender values in first-encountered order,
// including GroupNotification if present.
func Senders(msgs []Message) []string {
	seen := make(map[string]bool, 8)
	var out []string
	for _, m := range msgs {
		if !seen[m.Sender] {
			seen[m.Sender] = true
			out = append(out, m.Sender)
		}
	}
	return out
}
