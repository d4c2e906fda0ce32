package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/saeidalz13/battleship-cli/api"
	"github.com/saeidalz13/battleship-cli/internal/config"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	"github.com/saeidalz13/battleship-cli/models/console"
)

var (
	configPath  string
	firstPlayer string
	seed        uint64
	verbose     bool
	plain       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship against the computer on a 6x6 board",
	Long: `Each side gets a randomly placed fleet of seven ships:
one 3-cell, two 2-cell and four 1-cell ships. Ships never touch,
not even diagonally. Hitting or sinking a ship earns another shot.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	rootCmd.Flags().StringVar(&firstPlayer, "first", "", "who moves first: human or computer")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random source (0 picks one)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "disable colours")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if os.Getenv("BATTLESHIP_STAGE") != config.StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("first") {
		cfg.FirstPlayer = firstPlayer
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{cfg.LogFile}
	zapConfig.ErrorOutputPaths = []string{cfg.LogFile}

	return zapConfig.Build()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err = buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	styles := console.NewStyles()
	rendererOpts := []console.RendererOption{}
	if plain {
		styles = console.NewPlainStyles()
		rendererOpts = append(rendererOpts, console.WithPlainOutput())
	}

	out := cmd.OutOrStdout()
	rnd := mb.NewRand(cfg.Seed)
	placer := mb.NewFleetPlacer(
		rnd,
		mb.WithGridSize(cfg.BoardSize),
		mb.WithFleet(cfg.Fleet),
		mb.WithMaxAttempts(cfg.MaxAttempts),
		mb.WithMaxBoardRetries(cfg.MaxBoardRetries),
		mb.WithFleetLogger(logger),
	)
	gameManager := mb.NewBattleshipGameManager(rnd, placer, cfg.StartingState(), logger)
	prompt := console.NewLinePrompt(cmd.InOrStdin(), out, styles)

	runner, err := api.NewRunner(
		gameManager,
		prompt,
		out,
		api.WithStage(cfg.Stage),
		api.WithLogger(logger),
		api.WithSink(console.NewWriterSink(out, styles)),
		api.WithRenderer(console.NewRenderer(rendererOpts...)),
	)
	if err != nil {
		return err
	}

	logger.Debug("starting", zap.Int("board_size", cfg.BoardSize), zap.Ints("fleet", cfg.Fleet), zap.String("first", cfg.FirstPlayer))
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
