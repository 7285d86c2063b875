package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a chatlens configuration file without running analysis.

Checks:
  - YAML syntax
  - Entry pattern validity (must compile, with a timestamp capture group)
  - Timestamp layout presence
  - Positive table sizes and sentiment window
  - Webhook URLs
  - Transcript file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Entry pattern:     %s\n", cfg.TimestampFormat.Pattern)
	fmt.Printf("  Timestamp layout:  %s\n", cfg.TimestampFormat.Layout)
	fmt.Printf("  Media placeholder: %s\n", cfg.MediaPlaceholder)
	fmt.Printf("  Top words/emojis:  %d / %d\n", cfg.TopWords, cfg.TopEmojis)
	fmt.Printf("  Sentiment window:  %s\n", cfg.SentimentWindow)
	if len(cfg.ExtraStopwords) > 0 {
		fmt.Printf("  Extra stopwords:   %d\n", len(cfg.ExtraStopwords))
	}
	if len(cfg.Webhooks) > 0 {
		fmt.Printf("  Webhooks:          %d\n", len(cfg.Webhooks))
	}

	// Check the default transcript if one is configured (warning only)
	if cfg.Transcript != "" {
		if _, err := os.Stat(cfg.Transcript); err != nil {
			fmt.Printf("\nWarning: transcript %s not accessible: %v\n", cfg.Transcript, err)
		} else {
			fmt.Printf("\nTranscript found: %s\n", cfg.Transcript)
		}
	}

	return nil
}
