// tumble drops tetromino-shaped pieces into a curved well and lets
// rigid-body physics decide where they settle.
//
// Usage:
//
//	tumble play [game]      - Play in a window
//	tumble term [game]      - Play in the terminal
//	tumble serve            - Start SSH server for remote play
//	tumble scores [game]    - Show high scores
//	tumble list             - List available games
//	tumble snapshot [game]  - Render a headless run to PNG
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: from config, 50)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Database path (default: ~/.tumble/scores.db)
//	--config <path>       - Game config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/games/tumble"
	"github.com/vovakirdan/tumble/internal/registry"
)

const defaultGame = "tumble"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tumble",
	Short: "Tumble - stack falling pieces in a curved well",
	Long: `Tumble drops pieces into a round-bottomed well. Nudge and spin them
as they fall; the game ends when a piece comes to rest at the top.
Your score is the number of bodies in the well.

Available commands:
  play      - Play in a window
  term      - Play in the terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  list      - Show available games
  snapshot  - Render a headless run to PNG

Examples:
  tumble play
  tumble term tumble_bucket
  tumble serve --ssh :2222
  tumble snapshot --seed 7 --frames 600 --out well.png`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tumble/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// setup builds the shared logger and hands settings to the games.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tumble",
		Level:           level,
	})

	tumble.SetConfigPath(flagConfig)
	tumble.SetLogger(logger)
	return nil
}

// loadConfig reads the game config, falling back to defaults with a warning.
func loadConfig() config.TumbleConfig {
	cfg, err := config.LoadTumble(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		return config.DefaultTumbleConfig()
	}
	return cfg
}

// runtimeConfig resolves the frame rate and seed for a run. A zero seed
// is replaced by the clock unless keepZeroSeed is set.
func runtimeConfig(cmd *cobra.Command, cfg config.TumbleConfig, keepZeroSeed bool) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Window.TickRate
	if cmd.Flags().Changed("fps") {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 && !keepZeroSeed {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// createGame instantiates a registered game or exits with a hint.
func createGame(id string) registry.Game {
	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tumble list' to see available games.")
		os.Exit(1)
	}
	return game
}
