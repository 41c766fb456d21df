package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "start with the physics and rope overlay on")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload prefabs/game.yaml when it changes on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.cfg.World.ScreenWidth, game.cfg.World.ScreenHeight)
	ebiten.SetWindowTitle("magnetfisher")
	ebiten.SetTPS(game.cfg.World.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
