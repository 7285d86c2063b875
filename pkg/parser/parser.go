// Package parser converts raw chat transcript text into ordered Message
// records.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/chatlens/chatlens/pkg/chat"
)

// senderSeparator splits an entry fragment into sender and body. Fragments
// without it are system/group notifications.
const senderSeparator = ": "

// Parse converts raw transcript text into an ordered sequence of Messages.
//
// Every line matching the prefix pattern opens an entry; the entry's body
// runs to the next prefix match or end of input, so multi-line messages are
// captured whole. The first capture group of pattern is the timestamp
// fragment, parsed with layout (am/pm token lowercased first). A fragment
// that matched the pattern but fails layout parsing is a fatal *ParseError,
// as is a transcript with zero matchable entries. Text before the first
// entry prefix is excluded from the result.
//
// Parse is a pure function over its input; transcript order is preserved
// even when the source log misorders entries.
func Parse(raw string, pattern *regexp.Regexp, layout string) ([]chat.Message, error) {
	norm := normalizeSpaces(raw)

	locs := pattern.FindAllStringSubmatchIndex(norm, -1)
	if len(locs) == 0 {
		return nil, &ParseError{}
	}

	msgs := make([]chat.Message, 0, len(locs))
	for i, loc := range locs {
		// loc[2:4] is the first capture group: the timestamp fragment.
		frag := norm[loc[2]:loc[3]]
		ts, err := time.Parse(layout, strings.ToLower(frag))
		if err != nil {
			return nil, &ParseError{Entry: i + 1, Fragment: frag, Err: err}
		}

		end := len(norm)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		sender, body := splitFragment(norm[loc[1]:end])

		msgs = append(msgs, chat.Message{
			Timestamp: ts,
			Sender:    sender,
			Body:      body,
		})
	}

	return msgs, nil
}

// splitFragment separates "sender: body" on the first separator occurrence.
// Fragments without a separator are system notifications: the sentinel
// sender is assigned and the whole fragment becomes the body. The split
// happens before trimming so that entries with an empty body after the
// colon keep their sender.
func splitFragment(frag string) (sender, body string) {
	if idx := strings.Index(frag, senderSeparator); idx >= 0 {
		return frag[:idx], strings.TrimSpace(frag[idx+len(senderSeparator):])
	}
	return chat.GroupNotification, strings.TrimSpace(frag)
}

// normalizeSpaces replaces the no-break space variants some export paths
// emit (narrow no-break space before am/pm in particular) with ordinary
// spaces so one prefix pattern covers all of them.
func normalizeSpaces(s string) string {
	return strings.NewReplacer(" ", " ", " ", " ").Replace(s)
}
