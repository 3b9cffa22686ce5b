package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/engine"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/journal"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/modifiers"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/rng"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/scheduler"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/sim"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/chaoscraft/chaos-engine-go/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger.Info("starting chaos simulator",
		zap.String("version", version),
		zap.String("config", *configPath),
		zap.Uint64("seed", seed),
	)

	// Create context that listens for termination signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	w := world.NewNullExecutor(logger.Named("world"), world.WithWorlds(cfg.Simulation.Worlds...))

	var (
		jrnl *journal.Journal
		sink dispatch.Sink
	)
	if cfg.Journal.Enabled {
		var opts []journal.Option
		if cfg.Journal.Stream {
			opts = append(opts, journal.WithWriter(journal.NewWriter(cfg.Journal.Dir, "outcomes")))
		}
		jrnl = journal.New(logger.Named("journal"), cfg.Journal.Capacity, opts...)
		sink = jrnl
		logger.Info("journal enabled",
			zap.String("journal_id", jrnl.ID()),
			zap.Int("capacity", jrnl.Capacity()),
			zap.Bool("stream", cfg.Journal.Stream),
		)
	}

	tasks := scheduler.New(logger.Named("scheduler"))
	d, err := dispatch.New(dispatch.Options{
		World:  w,
		Tasks:  tasks,
		Rand:   rng.NewSeeded(seed),
		Logger: logger.Named("dispatch"),
		Sink:   sink,
	})
	if err != nil {
		logger.Fatal("failed to create dispatcher", zap.Error(err))
	}

	err = modifiers.Register(d, modifiers.Options{
		Weights:  cfg.Catalogs,
		Disabled: cfg.Engine.DisabledCatalogs,
	})
	if err != nil {
		logger.Fatal("failed to register modifier catalogs", zap.Error(err))
	}

	eng, err := engine.New(logger.Named("engine"), d, engine.Config{
		TickRateHz: cfg.Engine.TickRateHz,
		InboxSize:  cfg.Engine.InboxSize,
	})
	if err != nil {
		logger.Fatal("failed to create engine", zap.Error(err))
	}

	feed, err := sim.NewFeed(logger.Named("feed"), w, rng.NewSeeded(seed+1), cfg.Simulation.Worlds)
	if err != nil {
		logger.Fatal("failed to create event feed", zap.Error(err))
	}
	feed.Populate(cfg.Simulation.Players)

	logger.Info("simulation running",
		zap.Int("events_per_second", cfg.Simulation.EventsPerSecond),
		zap.Duration("duration", cfg.Simulation.Duration),
		zap.Strings("worlds", cfg.Simulation.Worlds),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(gctx)
	})
	g.Go(func() error {
		defer eng.Stop()
		_, err := feed.Run(gctx, eng, cfg.Simulation.EventsPerSecond, cfg.Simulation.Duration)
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation failed", zap.Error(err))
	}

	logger.Info("shutting down gracefully...")
	logger.Info("simulation stopped",
		zap.Uint64("events_handled", eng.Handled()),
		zap.Uint64("ticks", eng.Ticks()),
		zap.Int("pending_tasks", tasks.Pending()),
	)

	if jrnl == nil {
		return
	}

	stats := jrnl.Stats()
	logger.Info("journal summary",
		zap.String("stats", stats.String()),
		zap.Strings("top_modifiers", stats.Top(5)),
	)
	if err := jrnl.SaveToFile(cfg.Journal.Dir); err != nil {
		logger.Error("failed to save journal", zap.Error(err))
	}
	if err := jrnl.Close(); err != nil {
		logger.Error("failed to close journal", zap.Error(err))
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
