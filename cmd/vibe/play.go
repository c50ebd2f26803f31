package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/replay"
	"github.com/vovakirdan/vibe-arcade/internal/platform/tui"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Drop a vibe, continue after game over or level complete
  Enter        - Continue after game over or level complete
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, fewer bricks, progression from the classic tuning
  normal - Classic tuning, enemies speed up as levels advance
  hard   - 2 lives, more bricks, starts halfway up the progression
  fixed  - No progression, every level uses the config as written

Examples:
  vibe play
  vibe play --difficulty easy
  vibe play --seed 42 --record run.vibe
  vibe play --config ./my-vibe.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to this replay file")
}

// recordingGame is a game that can hand back its recorded inputs.
type recordingGame interface {
	Recording() *replay.Replay
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := gameArg(args, vibe.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		fmt.Fprintln(os.Stderr, "Run 'vibe difficulties' to see available presets.")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	// A fixed seed makes the recording reproducible
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed

	vibe.SetConfigPath(flagConfig)
	vibe.SetDifficultyPreset(flagDifficulty)
	vibe.SetRecording(flagRecord != "")
	vibe.SetLogger(gameLogger())

	// Surface config problems before the TUI hides stderr
	if _, err := vibe.LoadConfig(); err != nil {
		logger.Warn("using default config", "err", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDB)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	final, runErr := tui.Run(game, store, cfg, gameLogger())

	if store != nil {
		store.Close()
	}
	vibe.SetLogger(logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	state := final.State()
	fmt.Printf("Score %d, level %d (seed %d)\n", state.Score, state.Level, seed)

	if flagRecord != "" {
		rg, ok := game.(recordingGame)
		if !ok {
			return
		}
		rec := rg.Recording()
		if rec == nil {
			return
		}
		if err := replay.Save(flagRecord, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
			os.Exit(1)
		}
		logger.Info("replay saved", "path", flagRecord, "ticks", rec.Ticks())
	}
}
