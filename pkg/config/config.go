package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the entry pattern.
// DefaultConfig() always validates.
func Validate(cfg *Config) error {
	if err := validateTimestampFormat(&cfg.TimestampFormat); err != nil {
		return fmt.Errorf("timestamp_format: %w", err)
	}

	if cfg.MediaPlaceholder == "" {
		return errors.New("media_placeholder: must not be empty")
	}
	if cfg.TopWords <= 0 {
		return fmt.Errorf("top_words: must be positive, got %d", cfg.TopWords)
	}
	if cfg.TopEmojis <= 0 {
		return fmt.Errorf("top_emojis: must be positive, got %d", cfg.TopEmojis)
	}
	if cfg.SentimentWindow <= 0 {
		return fmt.Errorf("sentiment_window: must be positive, got %s", cfg.SentimentWindow)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateTimestampFormat(t *TimestampConfig) error {
	if t.Pattern == "" {
		return errors.New("pattern is required")
	}
	if t.Layout == "" {
		return errors.New("layout is required")
	}

	compiled, err := regexp.Compile(t.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	if compiled.NumSubexp() < 1 {
		return errors.New("pattern must contain a capture group for the timestamp")
	}

	t.compiledPattern = compiled
	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	wh.Token = expandEnvVar(wh.Token)

	parsed, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url must use http or https, got %q", parsed.Scheme)
	}

	switch wh.Trigger {
	case "", WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (use always or never)", wh.Trigger)
	}
	if wh.Trigger == "" {
		wh.Trigger = WebhookTriggerAlways
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}

	return s
}
