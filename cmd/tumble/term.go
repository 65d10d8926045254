package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tumble/internal/platform/tui"
	"github.com/vovakirdan/tumble/internal/storage"
)

var termCmd = &cobra.Command{
	Use:   "term [game]",
	Short: "Play in the terminal",
	Long: `Play inside the terminal. The well is drawn with colored blocks and
scales to the terminal size.

Controls:
  A / D or ←/→   - Push the falling piece left / right
  W / S or ↑/↓   - Spin the falling piece
  Space / P      - Pause
  Esc / Q        - Quit

Examples:
  tumble term
  tumble term tumble_bucket --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTerm,
}

func runTerm(cmd *cobra.Command, args []string) {
	game := createGame(gameArg(args))
	cfg := loadConfig()
	rc := runtimeConfig(cmd, cfg, false)

	// Get terminal size for the first frame
	rc.ScreenW, rc.ScreenH = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	// Info lines would be drawn over the playfield
	if !cmd.Flags().Changed("log-level") {
		logger.SetLevel(log.WarnLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	state, runErr := tui.Run(game, tui.Options{
		Config:         rc,
		Store:          store,
		Logger:         logger,
		ExitOnGameOver: true,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if state.GameOver {
		fmt.Println(tui.ResultLine(state.Score))
	}
}
