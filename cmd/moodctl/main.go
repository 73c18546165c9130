// Command moodctl runs the mood analysis engine from the command line and
// carries a few operational helpers for the API's database and Langfuse setup.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/blaisecz/mood-tracker/internal/config"
	"github.com/blaisecz/mood-tracker/internal/langfuse"
	"github.com/blaisecz/mood-tracker/internal/logging"
	"github.com/blaisecz/mood-tracker/internal/seed"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moodctl",
		Short:         "moodctl - mood tracker tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newAnalyzeCmd(),
		newSentimentCmd(),
		newSeedCmd(),
		newLangfusePingCmd(),
	)
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "analyze <file.json>",
		Short: "Run the insights engine over a JSON array of mood records",
		Long: `Reads a JSON array of mood records and prints the detected patterns,
insights and recommendations. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			result, err := analysis.NewEngine().Analyze(records)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

func readRecords(stdin io.Reader, path string) ([]analysis.Record, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []analysis.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

func newSentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment <text...>",
		Short: "Score the polarity and subjectivity of a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := analysis.ScoreSentiment(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "polarity: %.2f\nsubjectivity: %.2f\n", s.Polarity, s.Subjectivity)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the configured database with demo users and mood entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.NewDatabase(cfg, log)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			if err := seed.Run(db, log); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Sample user IDs for testing:")
			for _, u := range seed.Users {
				fmt.Fprintf(out, "  %s (%s)\n", u.ID, u.Timezone)
			}
			return nil
		},
	}
}

func newLangfusePingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langfuse-ping",
		Short: "Create a test trace to check Langfuse connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "=== Langfuse Connection Test ===")
			fmt.Fprintf(out, "Base URL:    %s\n", cfg.LangfuseBaseURL)
			fmt.Fprintf(out, "Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
			fmt.Fprintf(out, "Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
			fmt.Fprintf(out, "Environment: %s\n\n", cfg.LangfuseEnv)

			client := langfuse.NewClient(langfuse.Config{
				BaseURL:     cfg.LangfuseBaseURL,
				PublicKey:   cfg.LangfusePublicKey,
				SecretKey:   cfg.LangfuseSecretKey,
				Environment: cfg.LangfuseEnv,
			})
			if !client.IsEnabled() {
				return fmt.Errorf("langfuse client is disabled, check LANGFUSE_BASE_URL and keys")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
				UserID: "moodctl",
				Name:   "langfuse-ping",
				Input: map[string]any{
					"message": "Hello from moodctl",
					"time":    time.Now().Format(time.RFC3339),
				},
				Output: map[string]any{"status": "success"},
				Tags:   []string{"test", "manual"},
			})
			if err != nil {
				return fmt.Errorf("create trace: %w", err)
			}
			if err := client.Flush(ctx); err != nil {
				return fmt.Errorf("deliver trace: %w", err)
			}

			fmt.Fprintln(out, "Test trace sent")
			fmt.Fprintf(out, "  Trace ID: %s\n", traceID)
			fmt.Fprintf(out, "  View at:  %s/trace/%s\n", strings.TrimSuffix(cfg.LangfuseBaseURL, "/"), traceID)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
