package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/platform/tui"
	"github.com/vovakirdan/tumble/internal/platform/window"
	"github.com/vovakirdan/tumble/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in a window",
	Long: `Open a window and play. The game ends when a piece lands at the top
of the well; the score is printed on exit.

Controls:
  A / D      - Push the falling piece left / right
  W / S      - Spin the falling piece
  Space      - Pause
  Esc / Q    - Quit

Examples:
  tumble play
  tumble play tumble_bucket --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	game := createGame(gameArg(args))
	cfg := loadConfig()
	rc := runtimeConfig(cmd, cfg, false)

	res, err := window.Run(game, window.Options{
		Config: rc,
		Scale:  cfg.Window.Scale,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if res.State.GameOver {
		saveRun(game.ID(), res.State, rc.Seed, res.Frames)
		fmt.Println(tui.ResultLine(res.State.Score))
	}
}

// saveRun stores a finished run. Failures are logged; the score was
// already shown to the player.
func saveRun(gameID string, state core.GameState, seed int64, frames uint64) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	run := storage.Run{GameID: gameID, Score: state.Score, Seed: seed, Frames: frames}
	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save score", "error", err)
	}
}
