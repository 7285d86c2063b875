package stats

import (
	"fmt"
	"sort"
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/chatlens/chatlens/pkg/chat"
)

// busiestSendersLimit bounds the busiest-senders ranking.
const busiestSendersLimit = 10

// urlPattern finds URL occurrences, including schemeless ones like
// "example.com". Compiled once; read-only afterwards.
var urlPattern = xurls.Relaxed()

// Overall computes the headline totals for a scope.
func Overall(msgs []chat.Message, scope, mediaToken string) Totals {
	scoped := chat.Scoped(msgs, scope)
	substantive := chat.Substantive(scoped, mediaToken)

	t := Totals{Messages: len(scoped)}
	for _, m := range scoped {
		if mediaToken != "" && strings.Contains(m.Body, mediaToken) {
			t.Media++
		}
		t.Links += len(urlPattern.FindAllString(m.Body, -1))
	}
	for _, m := range substantive {
		t.Words += len(strings.Fields(m.Body))
		t.Emojis += len(collectEmojis(m.Body))
	}
	return t
}

// BusiestSenders ranks senders by substantive message count, descending,
// at most ten rows. Ties keep first-encountered sender order.
func BusiestSenders(msgs []chat.Message, scope, mediaToken string) []SenderCount {
	substantive := chat.Substantive(chat.Scoped(msgs, scope), mediaToken)

	counts := make(map[string]int, 8)
	var order []string
	for _, m := range substantive {
		if _, ok := counts[m.Sender]; !ok {
			order = append(order, m.Sender)
		}
		counts[m.Sender]++
	}

	ranked := make([]SenderCount, 0, len(order))
	for _, s := range order {
		ranked = append(ranked, SenderCount{Sender: s, Count: counts[s]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > busiestSendersLimit {
		ranked = ranked[:busiestSendersLimit]
	}
	return ranked
}

// SenderShares computes every sender's percentage share of the scope's
// total message count (full set, not substantive-filtered), descending by
// count with ties in first-encountered order. Shares sum to 100% modulo
// per-row rounding.
func SenderShares(msgs []chat.Message, scope string) []SenderShare {
	scoped := chat.Scoped(msgs, scope)
	if len(scoped) == 0 {
		return []SenderShare{}
	}

	counts := make(map[string]int, 8)
	var order []string
	for _, m := range scoped {
		if _, ok := counts[m.Sender]; !ok {
			order = append(order, m.Sender)
		}
		counts[m.Sender]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := float64(len(scoped))
	shares := make([]SenderShare, 0, len(order))
	for _, s := range order {
		shares = append(shares, SenderShare{
			Sender:  s,
			Percent: fmt.Sprintf("%.2f%%", float64(counts[s])/total*100),
		})
	}
	return shares
}

// TypeCounts partitions a scope's full message set into text, media and
// link-bearing counts. Text is defined as total minus media, so
// Text+Media always equals the scope total.
func TypeCounts(msgs []chat.Message, scope, mediaToken string) MessageTypes {
	scoped := chat.Scoped(msgs, scope)

	var mt MessageTypes
	for _, m := range scoped {
		if mediaToken != "" && strings.Contains(m.Body, mediaToken) {
			mt.Media++
		}
		if strings.Contains(m.Body, "http") {
			mt.Links++
		}
	}
	mt.Text = len(scoped) - mt.Media
	return mt
}
