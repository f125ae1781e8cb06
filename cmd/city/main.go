//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"microcity/internal/app"
	"microcity/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world := sim.NewWorld(cfg.Seed)
	world.Scheduler().Start()

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("microcity: " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
