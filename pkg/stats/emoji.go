package stats

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"github.com/chatlens/chatlens/pkg/chat"
)

// collectEmojis returns every emoji occurrence in a body, duplicates
// included, in order of appearance.
func collectEmojis(body string) []string {
	found := gomoji.CollectAll(body)
	out := make([]string, 0, len(found))
	for _, e := range found {
		out = append(out, e.Character)
	}
	return out
}

// TopEmojis returns the n most frequent individual emoji characters over
// substantive bodies, descending by count, ties in first-seen order.
func TopEmojis(msgs []chat.Message, scope, mediaToken string, n int) []EmojiCount {
	substantive := chat.Substantive(chat.Scoped(msgs, scope), mediaToken)

	counts := make(map[string]int, 32)
	var order []string
	for _, m := range substantive {
		for _, e := range collectEmojis(m.Body) {
			if _, ok := counts[e]; !ok {
				order = append(order, e)
			}
			counts[e]++
		}
	}

	ranked := make([]EmojiCount, 0, len(order))
	for _, e := range order {
		ranked = append(ranked, EmojiCount{Emoji: e, Count: counts[e]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
