package parser

import "fmt"

// ParseError indicates a transcript that cannot be analyzed as a whole:
// either no entries matched the configured prefix pattern, or a matched
// entry's timestamp fragment failed the configured layout. There is no
// partial recovery; analysis is all-or-nothing per transcript.
type ParseError struct {
	// Entry is the 1-based index of the offending entry, 0 when the
	// transcript contained no matchable entries at all.
	Entry int

	// Fragment is the timestamp fragment that failed to parse, empty when
	// no entries matched.
	Fragment string

	// Err is the underlying time.Parse error, nil when no entries matched.
	Err error
}

func (e *ParseError) Error() string {
	if e.Entry == 0 {
		return "transcript contains no matchable entries"
	}
	return fmt.Sprintf("entry %d: parsing timestamp %q: %v", e.Entry, e.Fragment, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
