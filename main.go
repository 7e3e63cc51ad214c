package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ripple-grid/internal/applog"
	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/game"
)

var (
	widthFlag      = flag.Int("width", config.WindowWidth, "Initial window width in pixels")
	heightFlag     = flag.Int("height", config.WindowHeight, "Initial window height in pixels")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	debugFlag      = flag.Bool("debug", false, "Write debug log to "+config.LogDir+"/"+config.LogFileName)
)

func main() {
	flag.Parse()

	if f := applog.Setup(*debugFlag, config.LogDir); f != nil {
		defer f.Close()
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Ripple Grid - Space: overlay, F: fullscreen, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)

	g := game.NewGame()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		fmt.Fprintf(os.Stderr, "ripplegrid: %v\n", err)
		_ = zenity.Error(err.Error(), zenity.Title("Ripple Grid"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
