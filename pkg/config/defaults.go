package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	// DefaultTimestampPattern recognizes Android-style export prefixes:
	// "D/M/YY, H:MM am - ", anchored at line start ((?m) because the
	// parser scans whole transcripts, not single lines). The narrow
	// no-break space some export paths put before am/pm is normalized
	// away before this pattern is applied.
	DefaultTimestampPattern = `(?m)^(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2} [AaPp][Mm]) - `

	// DefaultTimestampLayout parses the captured fragment; the am/pm token
	// is lowercased before parsing so AM/PM exports parse too.
	DefaultTimestampLayout = "2/1/06, 3:04 pm"

	DefaultMediaPlaceholder = "<Media omitted>"

	DefaultTopWords        = 20
	DefaultTopEmojis       = 10
	DefaultSentimentWindow = 7 * 24 * time.Hour

	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvTimestampLayout  = "CHATLENS_TIMESTAMP_LAYOUT"
	EnvMediaPlaceholder = "CHATLENS_MEDIA_PLACEHOLDER"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TimestampFormat: TimestampConfig{
			Pattern: DefaultTimestampPattern,
			Layout:  DefaultTimestampLayout,
		},
		MediaPlaceholder: DefaultMediaPlaceholder,
		TopWords:         DefaultTopWords,
		TopEmojis:        DefaultTopEmojis,
		SentimentWindow:  DefaultSentimentWindow,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvTimestampLayout); layout != "" {
		c.TimestampFormat.Layout = layout
	}
	if token := os.Getenv(EnvMediaPlaceholder); token != "" {
		c.MediaPlaceholder = token
	}
}
