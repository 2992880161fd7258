package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/simulation"
	"github.com/decker502/invaders/pkg/terminal"
)

var (
	configPath = flag.String("config", "", "path to a yaml game config (default: embedded data/invaders.yaml)")
	seed       = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	verbose    = flag.Bool("verbose", false, "log per-tick events")
	termMode   = flag.Bool("term", false, "run in the terminal instead of a window")
	logFile    = flag.String("log", "invaders.log", "log file used in -term mode")
)

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		logger *zap.Logger
		err    error
	)
	if *termMode {
		logger, err = logging.NewFile(*logFile, *verbose)
	} else {
		logger, err = logging.New(*verbose)
	}
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	sim, err := simulation.New(cfg, *seed, simulation.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("starting",
		zap.String("run", sim.RunID.String()),
		zap.Int64("seed", *seed),
		zap.Bool("term", *termMode))

	if *termMode {
		return runTerminal(sim, logger)
	}
	return app.NewApp(sim, logger).Run()
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile("data/invaders.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
}

func runTerminal(sim *simulation.Simulation, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.New(screen, sim, logger).Run(ctx)
}
