package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SebastianBuritica/interviewprep/internal/app"
	"github.com/SebastianBuritica/interviewprep/internal/challenge"
	"github.com/SebastianBuritica/interviewprep/internal/config"
	"github.com/SebastianBuritica/interviewprep/internal/grader"
	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/llm"
	"github.com/SebastianBuritica/interviewprep/internal/logging"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
	"github.com/SebastianBuritica/interviewprep/internal/questiongen"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
	"github.com/SebastianBuritica/interviewprep/internal/review"
	"github.com/SebastianBuritica/interviewprep/internal/screens/home"
	"github.com/SebastianBuritica/interviewprep/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	verbose, _ := cmd.Flags().GetBool("verbose")

	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.NewFile(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	fsys, err := contentFS(cfg)
	if err != nil {
		return err
	}
	library, err := guides.Load(fsys)
	if err != nil {
		return fmt.Errorf("load guides: %w", err)
	}
	registry, err := challenge.Load(fsys)
	if err != nil {
		return fmt.Errorf("load challenges: %w", err)
	}

	events := st.EventRepo()
	snapshots := st.SnapshotRepo()

	// Warm the review scheduler from the latest snapshot. A missing or
	// unreadable snapshot just means an empty schedule until the next
	// drill rebuilds it.
	var snapData *store.SnapshotData
	if snap, err := snapshots.Latest(ctx); err != nil {
		logger.Warn("load snapshot", zap.Error(err))
	} else if snap != nil {
		snapData = &snap.Data
	}

	bank := quiz.NewBank()
	deps := home.Deps{
		Events:    events,
		Snapshots: snapshots,
		Registry:  registry,
		Library:   library,
		Renderer:  markdown.NewRenderer(cfg.Markdown.Style),
		Generator: bank,
		Scheduler: review.NewScheduler(snapData),
		Logger:    logger,
		Duration:  time.Duration(cfg.Quiz.DurationMins) * time.Minute,
	}

	// The app works without an LLM: the curated bank generates and
	// exact matching grades.
	provider, err := buildProvider(ctx, cfg, events)
	if err != nil {
		logger.Info("llm provider not configured", zap.Error(err))
	} else if cfg.Quiz.PreferLLM {
		deps.Generator = questiongen.New(provider, questiongen.DefaultConfig())
		deps.Fallback = bank
		deps.Grader = grader.New(provider, grader.DefaultConfig())
		deps.LLMActive = true
	}

	return app.Run(deps)
}

// buildProvider resolves LLM configuration: the config file selection
// first, then INTERVIEWPREP_* env vars, then probing the standard API
// key env vars.
func buildProvider(ctx context.Context, cfg config.Config, events store.EventRepo) (llm.Provider, error) {
	lcfg := llm.ConfigFromEnv()
	if cfg.LLM.Provider != "" {
		lcfg.Provider = cfg.LLM.Provider
	}

	if err := lcfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		lcfg = discovered
	}

	if cfg.LLM.Model != "" {
		switch lcfg.Provider {
		case "anthropic":
			lcfg.Anthropic.Model = cfg.LLM.Model
		case "openai":
			lcfg.OpenAI.Model = cfg.LLM.Model
		case "gemini":
			lcfg.Gemini.Model = cfg.LLM.Model
		case "openrouter":
			lcfg.OpenRouter.Model = cfg.LLM.Model
		}
	}

	return llm.NewProvider(ctx, lcfg, events)
}
