package parser

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/chatlens/chatlens/pkg/chat"
)

var (
	testPattern = regexp.MustCompile(`(?m)^(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2} [AaPp][Mm]) - `)
	testLayout  = "2/1/06, 3:04 pm"
)

func TestParse_Basic(t *testing.T) {
	raw := "1/1/23, 10:00 am - Alice: Hello\n" +
		"1/1/23, 10:05 am - Bob: <Media omitted>\n" +
		"1/1/23, 10:06 am - Alice: ?"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(msgs) != 3 {
		t.Fatalf("Got %d messages, want 3", len(msgs))
	}

	want := []chat.Message{
		{Timestamp: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC), Sender: "Alice", Body: "Hello"},
		{Timestamp: time.Date(2023, 1, 1, 10, 5, 0, 0, time.UTC), Sender: "Bob", Body: "<Media omitted>"},
		{Timestamp: time.Date(2023, 1, 1, 10, 6, 0, 0, time.UTC), Sender: "Alice", Body: "?"},
	}
	for i, m := range msgs {
		if !m.Timestamp.Equal(want[i].Timestamp) {
			t.Errorf("msgs[%d].Timestamp = %v, want %v", i, m.Timestamp, want[i].Timestamp)
		}
		if m.Sender != want[i].Sender {
			t.Errorf("msgs[%d].Sender = %q, want %q", i, m.Sender, want[i].Sender)
		}
		if m.Body != want[i].Body {
			t.Errorf("msgs[%d].Body = %q, want %q", i, m.Body, want[i].Body)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	pairs := []struct {
		sender string
		body   string
	}{
		{"Alice", "Hello there"},
		{"Bob Marley", "short"},
		{"Alice", "with numbers 123 and http://example.com"},
		{"Carol", "emoji 😀 body"},
	}

	raw := ""
	for i, p := range pairs {
		raw += fmt.Sprintf("1/1/23, 10:%02d am - %s: %s\n", i, p.sender, p.body)
	}

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(msgs) != len(pairs) {
		t.Fatalf("Got %d messages, want %d", len(msgs), len(pairs))
	}
	for i, p := range pairs {
		if msgs[i].Sender != p.sender {
			t.Errorf("msgs[%d].Sender = %q, want %q", i, msgs[i].Sender, p.sender)
		}
		if msgs[i].Body != p.body {
			t.Errorf("msgs[%d].Body = %q, want %q", i, msgs[i].Body, p.body)
		}
	}
}

func TestParse_MultilineBody(t *testing.T) {
	raw := "1/1/23, 10:00 am - Alice: first line\nsecond line\nthird line\n" +
		"1/1/23, 10:05 am - Bob: ok"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(msgs) != 2 {
		t.Fatalf("Got %d messages, want 2", len(msgs))
	}
	if want := "first line\nsecond line\nthird line"; msgs[0].Body != want {
		t.Errorf("Body = %q, want %q", msgs[0].Body, want)
	}
}

func TestParse_GroupNotification(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSender string
		wantBody   string
	}{
		{
			name:       "no separator",
			raw:        "1/1/23, 10:00 am - Messages and calls are end-to-end encrypted",
			wantSender: chat.GroupNotification,
			wantBody:   "Messages and calls are end-to-end encrypted",
		},
		{
			name:       "colon without space is not a separator",
			raw:        "1/1/23, 10:00 am - Alice changed to +1 555:1234",
			wantSender: chat.GroupNotification,
			wantBody:   "Alice changed to +1 555:1234",
		},
		{
			name:       "separator present",
			raw:        "1/1/23, 10:00 am - Alice: hi: there",
			wantSender: "Alice",
			wantBody:   "hi: there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := Parse(tt.raw, testPattern, testLayout)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(msgs) != 1 {
				t.Fatalf("Got %d messages, want 1", len(msgs))
			}
			if msgs[0].Sender != tt.wantSender {
				t.Errorf("Sender = %q, want %q", msgs[0].Sender, tt.wantSender)
			}
			if msgs[0].Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", msgs[0].Body, tt.wantBody)
			}
		})
	}
}

func TestParse_EmptyBody(t *testing.T) {
	raw := "1/1/23, 10:00 am - Alice: \n1/1/23, 10:01 am - Bob: hi"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(msgs) != 2 {
		t.Fatalf("Got %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != "Alice" {
		t.Errorf("Sender = %q, want Alice", msgs[0].Sender)
	}
	if msgs[0].Body != "" {
		t.Errorf("Body = %q, want empty", msgs[0].Body)
	}
}

func TestParse_NarrowNoBreakSpace(t *testing.T) {
	// Some export paths put U+202F between time and am/pm.
	raw := "1/1/23, 10:00 am - Alice: Hi"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("Got %d messages, want 1", len(msgs))
	}
	if !msgs[0].Timestamp.Equal(time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("Timestamp = %v", msgs[0].Timestamp)
	}
}

func TestParse_UppercaseMeridiem(t *testing.T) {
	raw := "1/1/23, 3:00 PM - Alice: afternoon"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := msgs[0].Timestamp.Hour(); got != 15 {
		t.Errorf("Hour = %d, want 15", got)
	}
}

func TestParse_SkipsNonMatchingLeadingLines(t *testing.T) {
	raw := "corrupted header line\n" +
		"another stray line\n" +
		"1/1/23, 10:00 am - Alice: Hello"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("Got %d messages, want 1 (leading lines dropped)", len(msgs))
	}
}

func TestParse_NoEntries(t *testing.T) {
	_, err := Parse("nothing here resembles an entry\nat all", testPattern, testLayout)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if parseErr.Entry != 0 {
		t.Errorf("Entry = %d, want 0", parseErr.Entry)
	}
}

func TestParse_BadTimestampIsFatal(t *testing.T) {
	// Matches the scan pattern but has no month 31.
	raw := "1/1/23, 10:00 am - Alice: fine\n31/31/23, 10:05 am - Bob: bad"

	_, err := Parse(raw, testPattern, testLayout)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if parseErr.Entry != 2 {
		t.Errorf("Entry = %d, want 2", parseErr.Entry)
	}
	if parseErr.Fragment == "" {
		t.Error("Fragment is empty, want offending timestamp")
	}
}

func TestParse_PreservesTranscriptOrder(t *testing.T) {
	// Source log misorders entries; the parser must not reorder.
	raw := "2/1/23, 10:00 am - Alice: second day\n" +
		"1/1/23, 10:00 am - Bob: first day"

	msgs, err := Parse(raw, testPattern, testLayout)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if msgs[0].Sender != "Alice" || msgs[1].Sender != "Bob" {
		t.Errorf("order = [%s, %s], want [Alice, Bob]", msgs[0].Sender, msgs[1].Sender)
	}
}
