package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/config"
	"github.com/milk9111/zuul/logger"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	out, closeLog, err := logger.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	lg := logger.Setup(cfg, out)

	game, err := NewGame(cfg, lg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("zuul")
	ebiten.SetTPS(game.tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
