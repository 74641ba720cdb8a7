package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/game"
)

func main() {
	log.SetPrefix("dotgrid: ")
	log.SetFlags(log.Ltime)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	// Maximizing needs a resizable window; later resizes are ignored by
	// Game.Layout.
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.MaximizeWindow()

	g := game.NewGame(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("fatal: %v", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Dot Grid")); dlgErr != nil {
			log.Printf("error dialog: %v", dlgErr)
		}
		os.Exit(1)
	}
}
