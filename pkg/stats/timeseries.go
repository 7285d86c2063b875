package stats

import (
	"time"

	"github.com/chatlens/chatlens/pkg/chat"
)

// ActivityHeatmap counts substantive messages per hour-of-day and weekday.
// The matrix shape is fixed at 24x7 regardless of data sparsity.
func ActivityHeatmap(msgs []chat.Message, scope, mediaToken string) Heatmap {
	var hm Heatmap
	for _, m := range chat.Substantive(chat.Scoped(msgs, scope), mediaToken) {
		hm[m.Timestamp.Hour()][mondayIndexed(m.Timestamp.Weekday())]++
	}
	return hm
}

// mondayIndexed maps time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// DailyVolume resamples substantive message counts into calendar-day
// buckets. The series is dense: days without messages inside the observed
// range appear with count 0.
func DailyVolume(msgs []chat.Message, scope, mediaToken string) []VolumePoint {
	return resample(chat.Substantive(chat.Scoped(msgs, scope), mediaToken),
		truncateDay, nextDay)
}

// MonthlyVolume resamples substantive message counts into calendar-month
// buckets, dense like DailyVolume.
func MonthlyVolume(msgs []chat.Message, scope, mediaToken string) []VolumePoint {
	return resample(chat.Substantive(chat.Scoped(msgs, scope), mediaToken),
		truncateMonth, nextMonth)
}

// resample buckets messages by truncate and walks the observed range with
// next, emitting zero-count buckets in between. Messages need not be in
// chronological order; the observed range is min..max timestamp.
func resample(msgs []chat.Message, truncate func(time.Time) time.Time, next func(time.Time) time.Time) []VolumePoint {
	if len(msgs) == 0 {
		return []VolumePoint{}
	}

	counts := make(map[time.Time]int, 32)
	first, last := truncate(msgs[0].Timestamp), truncate(msgs[0].Timestamp)
	for _, m := range msgs {
		b := truncate(m.Timestamp)
		counts[b]++
		if b.Before(first) {
			first = b
		}
		if b.After(last) {
			last = b
		}
	}

	var points []VolumePoint
	for b := first; !b.After(last); b = next(b) {
		points = append(points, VolumePoint{Date: b, Count: counts[b]})
	}
	return points
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

func truncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}
