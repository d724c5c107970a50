package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fpt/internal/config"
	"github.com/vovakirdan/fpt/internal/core"
	"github.com/vovakirdan/fpt/internal/games/fpt"
	"github.com/vovakirdan/fpt/internal/platform/tui"
	"github.com/vovakirdan/fpt/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode the view comes from the config's
view.mode: "rotating" plays fpt, "fixed" plays fpt_fixed.

Controls:
  Left/A, Right/D  - Rotate counter-clockwise / clockwise
  Up/W, Down/S     - Step forward / backward along the piece's facing
  Space            - Drop one row now
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Examples:
  fpt play
  fpt play fpt_fixed
  fpt play --fps 30 --seed 42
  fpt play --log-file fpt.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	fpt.SetConfigPath(flagConfig)

	gameID, err := playMode(args)
	if err != nil {
		return err
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'fpt list' to see available modes", gameID)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// playMode returns the game ID from args, or from the configured view mode.
func playMode(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return "", err
	}
	if cfg.View.Mode == config.ViewFixed {
		return fpt.IDFixed, nil
	}
	return fpt.IDRotating, nil
}
