package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridchase/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Grid Chase")
	ebiten.SetWindowSize(19*32, 15*32+48)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
