package chat

import (
	"reflect"
	"testing"
	"time"
)

const mediaToken = "<Media omitted>"

func msg(sender, body string) Message {
	return Message{Timestamp: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC), Sender: sender, Body: body}
}

func TestSubstantive(t *testing.T) {
	msgs := []Message{
		msg("Alice", "Hello"),
		msg("Bob", mediaToken),
		msg("Alice", "?"),
		msg("Bob", "."),
		msg("Carol", ""),
		msg("Alice", "real text"),
	}

	got := Substantive(msgs, mediaToken)

	want := []Message{msg("Alice", "Hello"), msg("Alice", "real text")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Substantive() = %v, want %v", got, want)
	}
}

func TestSubstantive_Idempotent(t *testing.T) {
	msgs := []Message{
		msg("Alice", "Hello"),
		msg("Bob", mediaToken),
		msg("Alice", "more"),
	}

	once := Substantive(msgs, mediaToken)
	twice := Substantive(once, mediaToken)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering a filtered set changed it: %v vs %v", once, twice)
	}
}

func TestSubstantive_DoesNotMutateInput(t *testing.T) {
	msgs := []Message{msg("Alice", "Hello"), msg("Bob", mediaToken)}
	before := make([]Message, len(msgs))
	copy(before, msgs)

	Substantive(msgs, mediaToken)

	if !reflect.DeepEqual(msgs, before) {
		t.Error("input slice was mutated")
	}
}

func TestSubstantive_QuestionSentenceKept(t *testing.T) {
	// Only a LONE "?" or "." is trivial; sentences containing them are not.
	msgs := []Message{msg("Alice", "really?"), msg("Bob", "?")}

	got := Substantive(msgs, mediaToken)
	if len(got) != 1 || got[0].Body != "really?" {
		t.Errorf("Substantive() = %v, want just the sentence", got)
	}
}

func TestScoped(t *testing.T) {
	msgs := []Message{msg("Alice", "a"), msg("Bob", "b"), msg("Alice", "c")}

	overall := Scoped(msgs, ScopeOverall)
	if len(overall) != 3 {
		t.Errorf("Scoped(Overall) = %d messages, want 3", len(overall))
	}

	alice := Scoped(msgs, "Alice")
	if len(alice) != 2 {
		t.Errorf("Scoped(Alice) = %d messages, want 2", len(alice))
	}
	for _, m := range alice {
		if m.Sender != "Alice" {
			t.Errorf("Scoped(Alice) contains %q", m.Sender)
		}
	}

	none := Scoped(msgs, "Nobody")
	if len(none) != 0 {
		t.Errorf("Scoped(Nobody) = %d messages, want 0", len(none))
	}
}

func TestSenders_FirstEncounteredOrder(t *testing.T) {
	msgs := []Message{
		msg("Bob", "1"),
		msg("Alice", "2"),
		msg("Bob", "3"),
		msg(GroupNotification, "joined"),
	}

	got := Senders(msgs)
	want := []string{"Bob", "Alice", GroupNotification}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Senders() = %v, want %v", got, want)
	}
}
