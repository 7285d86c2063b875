package detector

import "regexp"

// EntryFormat represents a known chat-export entry prefix for detection.
type EntryFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Layout     string         // Go time layout for parsing
	Examples   []string       // Example prefixes
	Ambiguous  bool           // True if format has date ordering ambiguity (D/M vs M/D)
}

// DefaultFormats returns the built-in export entry formats to detect.
// Formats are ordered roughly by specificity (more specific patterns first).
// The detection patterns are single-line (no (?m)); the suggested config
// pattern the CLI prints prepends the multiline flag.
func DefaultFormats() []*EntryFormat {
	formats := []*EntryFormat{
		// Android export with am/pm, 2-digit year (chatlens default)
		{
			Name:       "Android am/pm, 2-digit year",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} [AaPp][Mm]) - `,
			Layout:     "2/1/06, 3:04 pm",
			Examples:   []string{"1/1/23, 10:00 am - Alice: Hello"},
			Ambiguous:  true,
		},
		// Android export with am/pm, 4-digit year
		{
			Name:       "Android am/pm, 4-digit year",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{4}, \d{1,2}:\d{2} [AaPp][Mm]) - `,
			Layout:     "2/1/2006, 3:04 pm",
			Examples:   []string{"1/1/2023, 10:00 am - Alice: Hello"},
			Ambiguous:  true,
		},
		// Android export, 24-hour clock, dotted date
		{
			Name:       "Android 24-hour, dotted date",
			PatternStr: `^(\d{2}\.\d{2}\.\d{2}, \d{2}:\d{2}) - `,
			Layout:     "02.01.06, 15:04",
			Examples:   []string{"15.01.24, 10:30 - Alice: Hello"},
		},
		// Android export, 24-hour clock, slashed date
		{
			Name:       "Android 24-hour, slashed date",
			PatternStr: `^(\d{1,2}/\d{1,2}/\d{2,4}, \d{2}:\d{2}) - `,
			Layout:     "2/1/06, 15:04",
			Examples:   []string{"15/1/24, 22:30 - Alice: Hello"},
			Ambiguous:  true,
		},
		// iOS export, bracketed with seconds
		{
			Name:       "iOS bracketed with seconds",
			PatternStr: `^\[(\d{1,2}\.\d{1,2}\.\d{2}, \d{2}:\d{2}:\d{2})\] `,
			Layout:     "2.1.06, 15:04:05",
			Examples:   []string{"[15.01.24, 10:30:00] Alice: Hello"},
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
