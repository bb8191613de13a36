package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixl9/sidebrawl/assets"
	"github.com/pixl9/sidebrawl/config"
)

func main() {
	levelName := flag.String("level", "", "level file in levels/ (overrides SIDEBRAWL_LEVEL)")
	seed := flag.Int64("seed", 0, "AI random seed, 0 means time-based (overrides SIDEBRAWL_SEED)")
	debug := flag.Bool("debug", false, "show frame counter")
	noWatch := flag.Bool("no-watch", false, "disable prefab hot reload")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("sidebrawl: %v", err)
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}
	if *noWatch {
		cfg.WatchPrefabs = false
	}
	assets.Dir = cfg.AssetsDir

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("sidebrawl")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, *debug)
	if err != nil {
		log.Fatalf("sidebrawl: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
