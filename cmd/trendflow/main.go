// Package main provides the TrendFlow AI CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adammsanz-sketch/trendflow/internal/config"
	"github.com/adammsanz-sketch/trendflow/internal/gemini"
	"github.com/adammsanz-sketch/trendflow/internal/intent"
	"github.com/adammsanz-sketch/trendflow/internal/orchestrator"
)

var (
	// Global flags
	verbose    bool
	apiKey     string
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trendflow",
	Short: "TrendFlow AI - conversational command center for affiliate marketing",
	Long: `TrendFlow AI turns free-text commands into trend reports, campaign ideas,
and marketing strategy, powered by the Gemini API.

Run without arguments to start the interactive chat interface.
Try: 'find trends' or 'generate a campaign for tech gadgets'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// Keep the TUI output clean; structured logs go to stderr only in
		// one-shot mode, to a file otherwise.
		if cmd.Name() == "trendflow" {
			zcfg.OutputPaths = []string{"trendflow.log"}
			zcfg.ErrorOutputPaths = []string{"trendflow.log"}
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// runCmd executes a single command through the pipeline and prints the result
var runCmd = &cobra.Command{
	Use:   "run [command]",
	Short: "Execute a single command and print the result",
	Long: `Runs one command through the full pipeline (intent classification,
handler dispatch, structured generation) and prints the result to stdout.

Example:
  trendflow run "generate a campaign for home fitness"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOnce,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "trendflow.yaml", "path to config file")
	rootCmd.AddCommand(runCmd)
}

// buildOrchestrator wires the pipeline: config -> generation client ->
// classifier -> orchestrator. The orchestrator and handlers are stateless;
// all session state stays with the caller.
func buildOrchestrator(ctx context.Context) (*orchestrator.Orchestrator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gcfg := gemini.Config{
		APIKey:         cfg.LLM.APIKey,
		FlashModel:     cfg.LLM.FlashModel,
		ProModel:       cfg.LLM.ProModel,
		ThinkingBudget: cfg.LLM.ThinkingBudget,
		Timeout:        cfg.GetLLMTimeout(),
	}
	client, err := gemini.NewClient(ctx, gcfg, logger)
	if err != nil {
		return nil, err
	}

	return orchestrator.New(orchestrator.Config{
		Classifier: intent.NewClassifier(client, logger),
		Client:     client,
		Logger:     logger,
	}), nil
}

func runOnce(cmd *cobra.Command, args []string) error {
	command := strings.TrimSpace(strings.Join(args, " "))
	if command == "" {
		return fmt.Errorf("command text must not be empty")
	}

	ctx := cmd.Context()
	orch, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	res := orch.Execute(ctx, command)
	fmt.Println(res.Text)
	if res.Widget != nil {
		fmt.Println()
		fmt.Println(renderWidget(res.Widget, 76))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
