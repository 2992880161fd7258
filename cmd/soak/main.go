// Command soak runs the simulation headless with a random autopilot and
// reports what happened. Two runs with the same -seed print the same digest.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/logging"
	"github.com/decker502/invaders/pkg/simulation"
	"github.com/decker502/invaders/pkg/utils"
)

var (
	configPath = flag.String("config", "", "yaml game config (default: built-in defaults)")
	seed       = flag.Int64("seed", 1, "simulation seed")
	ticks      = flag.Int("ticks", 60*60, "number of ticks to run")
	fireRate   = flag.Float64("fire", 0.1, "autopilot chance to press fire on a tick")
	verbose    = flag.Bool("verbose", false, "log per-tick events")
)

type summary struct {
	kills        int
	playerDeaths int
	enemySpawns  int
	enemyShots   int
	maxEntities  int
}

func main() {
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("soak failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *ticks <= 0 {
		return errors.New("-ticks must be positive")
	}

	sim, err := simulation.New(cfg, *seed, simulation.WithLogger(logger))
	if err != nil {
		return err
	}
	pilot := utils.NewPRNGService(*seed + 1)

	var s summary
	for i := 0; i < *ticks; i++ {
		in := game.InputState{
			Left:        pilot.Bool(0.3),
			Right:       pilot.Bool(0.3),
			FirePressed: pilot.Bool(*fireRate),
		}
		if err := sim.Tick(in); err != nil {
			return err
		}

		r := sim.LastReport()
		s.kills += r.Collisions.EnemiesDestroyed
		if r.Collisions.PlayerHit {
			s.playerDeaths++
		}
		if r.EnemySpawned {
			s.enemySpawns++
		}
		s.enemyShots += r.EnemyLasersFired
		s.maxEntities = max(s.maxEntities, sim.EntityManager().EntityCount())
	}

	logger.Info("soak finished",
		zap.String("run", sim.RunID.String()),
		zap.Int64("seed", *seed),
		zap.Int("ticks", *ticks),
		zap.Float64("simSeconds", sim.Now()),
		zap.Int("kills", s.kills),
		zap.Int("playerDeaths", s.playerDeaths),
		zap.Int("enemySpawns", s.enemySpawns),
		zap.Int("enemyShots", s.enemyShots),
		zap.Int("maxEntities", s.maxEntities),
		zap.String("digest", fmt.Sprintf("%016x", sim.Digest())))
	return nil
}
