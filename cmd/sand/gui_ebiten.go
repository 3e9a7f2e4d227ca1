//go:build ebiten

package main

import (
	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
)

func runGUI(world *sand.World, cfg *app.Config) error {
	logger.Info("opening window", "sim", world.Name(), "scale", cfg.Scale, "tps", cfg.TPS)
	return app.Run(world, cfg, world.Config().Seed)
}
