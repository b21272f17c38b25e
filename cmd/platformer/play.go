package main

import (
	"os"
	"path/filepath"
	"strings"

	"platformer/internal/game"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	Long: `Open a window and play.

Controls:
  W/S        move forward and back
  A/D        turn (or move sideways with turn_policy: direct)
  SPACE      jump
  SHIFT      run
  R          back to the start, coin count cleared
  ESC        quit`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	chdirToExecutable()

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	return game.Run(cfg, logger)
}

// chdirToExecutable makes relative asset paths work for deployed builds.
// "go run" binaries live in a temporary go-build directory and are left
// alone.
func chdirToExecutable() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(execPath)
	if !strings.Contains(execDir, "go-build") {
		os.Chdir(execDir)
	}
}
