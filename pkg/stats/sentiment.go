package stats

import (
	"sort"
	"time"

	"github.com/jonreiter/govader"

	"github.com/chatlens/chatlens/pkg/chat"
)

// vader is the shared VADER analyzer. Its lexicon is loaded once at
// startup and treated as read-only reference data.
var vader = govader.NewSentimentIntensityAnalyzer()

// Polarity scores a single body in [-1, 1]; 0 is neutral or no sentiment.
func Polarity(body string) float64 {
	return vader.PolarityScores(body).Compound
}

// SentimentSeries computes per-message polarity over the substantive
// subset and averages it into consecutive windows anchored at midnight of
// the first substantive message's day. Windows with no messages produce no
// point; the series is sparse, unlike the volume series.
func SentimentSeries(msgs []chat.Message, scope, mediaToken string, window time.Duration) []SentimentPoint {
	substantive := chat.Substantive(chat.Scoped(msgs, scope), mediaToken)
	if len(substantive) == 0 || window <= 0 {
		return []SentimentPoint{}
	}

	origin := substantive[0].Timestamp
	for _, m := range substantive {
		if m.Timestamp.Before(origin) {
			origin = m.Timestamp
		}
	}
	origin = truncateDay(origin)

	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[int64]*bucket, 16)
	var order []int64
	for _, m := range substantive {
		k := int64(m.Timestamp.Sub(origin) / window)
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
			order = append(order, k)
		}
		b.sum += Polarity(m.Body)
		b.n++
	}

	// Emit in window order, not encounter order.
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	points := make([]SentimentPoint, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		points = append(points, SentimentPoint{
			Bucket: origin.Add(time.Duration(k) * window),
			Mean:   b.sum / float64(b.n),
		})
	}
	return points
}
