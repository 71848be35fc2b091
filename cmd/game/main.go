package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/boom/internal/application/game"
	"github.com/younwookim/boom/internal/application/scene/playing"
	"github.com/younwookim/boom/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and exit")
	stageFlag := flag.String("stage", "demo", "Stage to load from configs/stages")
	fisheyeFlag := flag.Bool("fisheye", false, "Enable fisheye correction")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll(*stageFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *fisheyeFlag {
		cfg.Engine.Camera.FisheyeCorrection = true
	}

	log.Printf("Stage %q: %dx%d cells of %d, %d rays over %.0f deg",
		cfg.Stage.ID, cfg.Stage.Cols(), cfg.Stage.Rows(), cfg.Stage.CellSize,
		cfg.Engine.NumRays(), cfg.Engine.Camera.FOVDeg)

	if *replayFlag != "" {
		if err := replayFile(cfg, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	display := cfg.Engine.Display
	scene := playing.New(cfg, *recordFlag)
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
