package main

import (
	"context"
	"fmt"
	"os"

	"execdeck/internal/config"
	"execdeck/internal/content"
	"execdeck/internal/logging"
	"execdeck/internal/telemetry"
	"execdeck/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	assetRoot  string
	noReveal   bool
	logFile    string
	logLevel   string
)

// session holds everything a command needs after startup.
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	recorder *telemetry.Recorder
	deck     *content.Deck
	env      ui.Env
}

var current *session

// rootCmd runs the interactive deck.
var rootCmd = &cobra.Command{
	Use:   "execdeck",
	Short: "Executive briefing deck for the terminal",
	Long: `execdeck presents the organisation's induction briefing as a full-screen
slide deck.

Navigate with ←/→ or space, jump with home/end, press ? for every key.
The previous/next buttons on the bottom bar are clickable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		current = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(current)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default $"+config.ConfigEnv+")")
	pf.StringVar(&assetRoot, "asset-root", "", "directory holding slide images")
	pf.BoolVar(&noReveal, "no-reveal", false, "show every item at once")
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(printCmd, listCmd)
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("asset-root") {
		cfg.Display.AssetRoot = assetRoot
	}
	if flags.Changed("no-reveal") {
		cfg.Display.Reveal = !noReveal
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	recorder, err := telemetry.New(cmd.Context(), cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
		recorder = nil
	}

	deck, err := content.Load()
	if err != nil {
		logger.Error("content invalid", zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("load deck: %w", err)
	}
	logger.Info("deck loaded",
		zap.String("title", deck.Title),
		zap.Int("slides", len(deck.Slides)),
		zap.String("asset_root", cfg.Display.AssetRoot),
	)

	env := ui.Env{
		Assets:         ui.NewAssetResolver(os.DirFS(cfg.Display.AssetRoot), logger),
		Markdown:       ui.NewMarkdownRenderer(cfg.Display.MarkdownStyle, logger),
		Logger:         logger,
		Reveal:         cfg.Display.Reveal,
		RevealInterval: cfg.RevealInterval(),
	}
	return &session{cfg: cfg, logger: logger, recorder: recorder, deck: deck, env: env}, nil
}

func (s *session) close() {
	if s == nil {
		return
	}
	if err := s.recorder.Shutdown(context.Background()); err != nil {
		s.logger.Warn("telemetry shutdown", zap.Error(err))
	}
	_ = s.logger.Sync()
}

func main() {
	err := rootCmd.Execute()
	current.close()
	if err != nil {
		os.Exit(1)
	}
}
