// Package main provides the battle simulator binary: it builds a board from
// configuration, places obstacles and units, and runs enemy turns against a
// stationary player until the battle concludes.
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hexbattle/internal/config"
	"github.com/cory-johannsen/hexbattle/internal/game/ai"
	"github.com/cory-johannsen/hexbattle/internal/game/battle"
	"github.com/cory-johannsen/hexbattle/internal/game/board"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/game/rng"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
	"github.com/cory-johannsen/hexbattle/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	unitsDir := flag.String("units-dir", "content/units", "path to unit YAML templates directory")
	playerID := flag.String("player", "hero", "template ID for the player unit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src rng.Source
	if cfg.Battle.Seed != 0 {
		src = rng.NewSeededSource(cfg.Battle.Seed)
	} else {
		src = rng.NewCryptoSource()
	}
	sampler := rng.NewSampler(src)

	templates, err := unit.LoadTemplates(*unitsDir)
	if err != nil {
		logger.Fatal("loading unit templates", zap.Error(err))
	}
	templateByID := make(map[string]*unit.Template, len(templates))
	for _, tmpl := range templates {
		templateByID[tmpl.ID] = tmpl
	}
	logger.Info("loaded unit templates", zap.Int("count", len(templates)))

	playerTmpl, ok := templateByID[*playerID]
	if !ok {
		logger.Fatal("player template not found", zap.String("id", *playerID))
	}

	grid, err := board.New(cfg.Grid.HexSize, cfg.Grid.Radius, cfg.Grid.OriginX, cfg.Grid.OriginY)
	if err != nil {
		logger.Fatal("constructing grid", zap.Error(err))
	}

	engine := battle.NewEngine()
	b, err := engine.StartBattle("skirmish", grid)
	if err != nil {
		logger.Fatal("starting battle", zap.Error(err))
	}

	// Player holds the center; enemies and obstacles fill in around it.
	player, err := b.SpawnAt(playerTmpl, unit.KindPlayer, hex.Axial{Q: 0, R: 0})
	if err != nil {
		logger.Fatal("spawning player", zap.Error(err))
	}
	if err := b.PlaceObstacles(sampler, cfg.Battle.Walls, cfg.Battle.Traps); err != nil {
		logger.Fatal("placing obstacles", zap.Error(err))
	}

	enemyTemplates := enemyPool(templates, *playerID)
	if len(enemyTemplates) == 0 {
		logger.Fatal("no enemy templates available")
	}
	for i := 0; i < cfg.Battle.Enemies; i++ {
		tmpl := enemyTemplates[i%len(enemyTemplates)]
		u, err := b.SpawnRandom(tmpl, unit.KindEnemy, sampler)
		if err != nil {
			logger.Fatal("spawning enemy", zap.Error(err))
		}
		logger.Info("enemy spawned",
			zap.String("template", tmpl.ID),
			zap.Int("unit_id", u.ID),
			zap.Int("q", u.Coord.Q),
			zap.Int("r", u.Coord.R),
		)
	}

	logger.Info("battle started",
		zap.Int("radius", cfg.Grid.Radius),
		zap.Int("walls", cfg.Battle.Walls),
		zap.Int("traps", cfg.Battle.Traps),
		zap.Int("enemies", cfg.Battle.Enemies),
	)

	ctrl := ai.NewController(grid, logger)
	observe := func(a ai.Action) {
		logger.Debug("action applied", zap.Stringer("action", a))
	}

	for round := 0; round < cfg.Battle.MaxRounds && !b.Over; round++ {
		b.RunEnemyRound(ctrl, logger, observe)
	}

	switch {
	case !b.Over:
		logger.Info("battle hit round limit", zap.Int("rounds", b.Round))
	case player.Alive:
		logger.Info("player side wins", zap.Int("rounds", b.Round), zap.Int("player_hp", player.HP))
	default:
		logger.Info("enemy side wins", zap.Int("rounds", b.Round))
	}
	logger.Info("simulation complete", zap.Duration("elapsed", time.Since(start)))
}

// enemyPool returns every template except the player's.
func enemyPool(templates []*unit.Template, playerID string) []*unit.Template {
	var out []*unit.Template
	for _, tmpl := range templates {
		if tmpl.ID != playerID {
			out = append(out, tmpl)
		}
	}
	return out
}
