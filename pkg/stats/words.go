package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/chatlens/chatlens/pkg/chat"
)

// tokenPattern extracts word tokens: runs of letters, digits or underscore
// at least two characters long. Single-character tokens carry no lexical
// signal and are dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TopWords returns the n most frequent tokens over substantive bodies,
// lowercased, with the English stopword list (plus extra) excluded.
// Descending by count; ties keep first-seen token order.
func TopWords(msgs []chat.Message, scope, mediaToken string, n int, extra []string) []WordCount {
	freqs := WordFrequencies(msgs, scope, mediaToken, extra)
	if n > 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	return freqs
}

// WordFrequencies returns the full token-frequency table, same tokenizer
// and stopword handling as TopWords, descending with first-seen ties.
// This is the wordcloud contract: the core supplies frequencies, the
// rendering collaborator draws them.
func WordFrequencies(msgs []chat.Message, scope, mediaToken string, extra []string) []WordCount {
	substantive := chat.Substantive(chat.Scoped(msgs, scope), mediaToken)

	stop := englishStopwords
	if len(extra) > 0 {
		stop = make(map[string]struct{}, len(englishStopwords)+len(extra))
		for w := range englishStopwords {
			stop[w] = struct{}{}
		}
		for _, w := range extra {
			stop[strings.ToLower(w)] = struct{}{}
		}
	}

	counts := make(map[string]int, 256)
	var order []string
	for _, m := range substantive {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(m.Body), -1) {
			if _, skip := stop[tok]; skip {
				continue
			}
			if _, ok := counts[tok]; !ok {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	freqs := make([]WordCount, 0, len(order))
	for _, tok := range order {
		freqs = append(freqs, WordCount{Word: tok, Count: counts[tok]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}
