// Package config provides configuration loading and validation for chatlens.
package config

import (
	"regexp"
	"time"
)

// Config is the root configuration structure loaded from YAML.
// Every field has a usable default; a missing config file means defaults.
type Config struct {
	// Transcript is an optional default transcript path, overridden by the
	// CLI argument when given.
	Transcript string `yaml:"transcript,omitempty"`

	TimestampFormat TimestampConfig `yaml:"timestamp_format"`

	// MediaPlaceholder is the token the export writes in place of media
	// content (images, audio, documents).
	MediaPlaceholder string `yaml:"media_placeholder"`

	// TopWords and TopEmojis bound the ranked frequency tables.
	TopWords  int `yaml:"top_words"`
	TopEmojis int `yaml:"top_emojis"`

	// SentimentWindow is the bucket width for the rolling sentiment series.
	SentimentWindow time.Duration `yaml:"sentiment_window"`

	// ExtraStopwords extends the built-in English stopword list.
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// TimestampConfig defines how transcript entries are recognized and parsed.
// Pattern matches an entry's date-time prefix at line start; its first
// capture group is the timestamp fragment, parsed with Layout.
type TimestampConfig struct {
	Pattern string `yaml:"pattern"`

	// Layout is the Go time layout string for parsing the captured fragment.
	// See https://pkg.go.dev/time#pkg-constants for format.
	Layout string `yaml:"layout"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled entry prefix regex.
func (t *TimestampConfig) CompiledPattern() *regexp.Regexp {
	return t.compiledPattern
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every analysis (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending analysis reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "always" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
