package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/detector"
	"github.com/chatlens/chatlens/pkg/parser"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Config     string
	SampleSize int
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <transcript.txt>",
		Short: "Inspect a transcript without analyzing it",
		Long: `Inspect a chat transcript and report parse diagnostics:

  - Matched entry count and skipped-line count
  - Distinct senders and the covered date range
  - Sample lines the entry scan excluded
  - Detected export formats when the configured one does not fit

Unlike analyze, inspect does not fail on an unparseable transcript;
diagnosing broken exports is what it is for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (optional)")
	cmd.Flags().IntVar(&opts.SampleSize, "sample", 100, "Lines to sample for format detection")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	transcriptPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(transcriptPath) // #nosec G304 -- user-provided transcript path is expected
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}

	fmt.Printf("Inspecting %s...\n\n", transcriptPath)

	scan, err := parser.Scan(string(raw), cfg.TimestampFormat.CompiledPattern(), cfg.TimestampFormat.Layout)

	var parseErr *parser.ParseError
	switch {
	case err == nil:
		printScan(scan)
	case errors.As(err, &parseErr):
		fmt.Printf("Transcript does not parse with the configured format: %v\n\n", parseErr)
	default:
		return fmt.Errorf("scanning transcript: %w", err)
	}

	// Run format detection when the configured format misses entries.
	if err != nil || scan.SkippedLines > 0 {
		return printDetection(ctx, transcriptPath, opts.SampleSize)
	}

	return nil
}

func printScan(scan *parser.ScanResult) {
	fmt.Printf("Entries matched:  %d\n", scan.Entries)
	fmt.Printf("Lines (total):    %d\n", scan.TotalLines)
	fmt.Printf("Lines skipped:    %d\n", scan.SkippedLines)
	fmt.Printf("Senders:          %d\n", len(scan.Senders))
	for _, s := range scan.Senders {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Printf("Range:            %s to %s\n",
		scan.First.Format("2006-01-02 15:04"), scan.Last.Format("2006-01-02 15:04"))

	if len(scan.SkippedSamples) > 0 {
		fmt.Println("\nSkipped line samples:")
		for _, line := range scan.SkippedSamples {
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Println()
}

func printDetection(ctx context.Context, path string, sampleSize int) error {
	d := detector.New(detector.WithSampleSize(sampleSize))

	result, err := d.DetectFromFile(ctx, path)
	if err != nil {
		return fmt.Errorf("detecting formats: %w", err)
	}

	if !result.HasMatch() {
		fmt.Println("No known export format matched the sampled lines.")
		return nil
	}

	fmt.Printf("Detected formats (%d lines sampled):\n", result.SampledLines)
	for _, m := range result.Matches {
		fmt.Printf("  %-32s %3.0f%% (%d lines)\n", m.Format.Name, m.Confidence*100, m.MatchCount)
		fmt.Printf("    sample: %s\n", m.SampleLine)
	}

	best := result.BestMatch()
	fmt.Println("\nSuggested configuration:")
	fmt.Println("  timestamp_format:")
	fmt.Printf("    pattern: '(?m)%s'\n", best.Format.PatternStr)
	fmt.Printf("    layout: %q\n", best.Format.Layout)

	if result.AmbiguityNote != "" {
		fmt.Printf("\nNote: %s\n", result.AmbiguityNote)
	}

	return nil
}
