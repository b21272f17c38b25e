package main

import (
	"fmt"

	"platformer/internal/game"
	"platformer/internal/input"

	"github.com/spf13/cobra"
)

var (
	flagFrames    int
	flagDt        float32
	flagHold      string
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a window",
	Long: `Run the simulation headless with scripted input and log the final state.

--hold takes a comma separated list of actions held for every frame:
forward, back, left, right, run. --jump-every presses jump on every
Nth frame.

Examples:
  platformer sim --frames 300
  platformer sim --frames 900 --hold forward,left --jump-every 30`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().Float32Var(&flagDt, "dt", 1.0/60.0, "Seconds per frame")
	simCmd.Flags().StringVar(&flagHold, "hold", "", "Actions held every frame")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N frames (0 = never)")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	held, err := input.ParseKeys(flagHold)
	if err != nil {
		return fmt.Errorf("--hold: %w", err)
	}
	script := input.Hold(held, flagFrames, flagJumpEvery)

	summary, err := game.Simulate(cfg, script, flagFrames, flagDt, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"frames", summary.Frames,
		"coins", summary.Coins,
		"stars", fmt.Sprintf("%d/%d", summary.Stars, summary.StarTotal),
		"blocks", summary.BlocksTriggered,
		"won", summary.Won,
		"grounded", summary.Grounded,
		"x", summary.Position.X,
		"y", summary.Position.Y,
		"z", summary.Position.Z)
	return nil
}
