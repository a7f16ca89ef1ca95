package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"surveyinsights/internal/app"
	"surveyinsights/internal/config"
	"surveyinsights/internal/model"
	"surveyinsights/internal/pkg/logger"
	"surveyinsights/internal/transport/stdio"
)

var (
	// Global flags
	envFile string
	input   string
	output  string
	pretty  bool
	verbose bool
	timeout time.Duration

	application *app.App
	log         *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "insights",
	Short: "Derive roadmap, jobs-to-be-done and campaign messaging from a survey result",
	Long: `insights reads a completed multi-agent survey result (JSON or YAML) and
derives three decision-ready reports:

  roadmap   which options to build first, by ROI
  jobs      the motivations behind respondent choices
  campaign  platform messaging, ad copy and a rollout timeline

Set REDIS_URI to share results between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		log, err = logger.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		application, err = app.Build(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("failed to build application: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
		if log != nil {
			_ = log.Sync()
		}
	},
}

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Run all three analyzers",
	RunE: runAnalyzer(func(ctx context.Context, r *model.SurveyResult) (interface{}, error) {
		return application.Synthesis.Synthesize(ctx, r)
	}),
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Compute the phased implementation roadmap",
	RunE: runAnalyzer(func(ctx context.Context, r *model.SurveyResult) (interface{}, error) {
		return application.Synthesis.Roadmap(ctx, r)
	}),
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Extract the jobs-to-be-done analysis",
	RunE: runAnalyzer(func(ctx context.Context, r *model.SurveyResult) (interface{}, error) {
		return application.Synthesis.Jobs(ctx, r)
	}),
}

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Generate campaign messaging and the rollout timeline",
	RunE: runAnalyzer(func(ctx context.Context, r *model.SurveyResult) (interface{}, error) {
		return application.Synthesis.Campaign(ctx, r)
	}),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading the environment")
	rootCmd.PersistentFlags().StringVarP(&input, "input", "i", "-", "Survey result file (.json, .yaml) or - for stdin")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(synthesizeCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(campaignCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(execute(ctx, os.Stderr))
}

// execute runs the root command and reports a failure as a JSON error on stderr
func execute(ctx context.Context, stderr io.Writer) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if werr := stdio.WriteError(stderr, err); werr != nil {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

type analyzeFunc func(ctx context.Context, r *model.SurveyResult) (interface{}, error)

func runAnalyzer(fn analyzeFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		result, err := stdio.ReadSurveyFile(input, cmd.InOrStdin())
		if err != nil {
			return err
		}
		log.Debug("survey result loaded",
			zap.String("input", input),
			zap.Int("options", len(result.Options)),
			zap.Int("responses", len(result.AllResponses())),
		)

		report, err := fn(ctx, result)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report)
	}
}

func writeReport(stdout io.Writer, report interface{}) error {
	if output == "" {
		return stdio.WriteJSON(stdout, report, pretty)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := stdio.WriteJSON(f, report, pretty); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.Info("report written", zap.String("output", output))
	return nil
}
