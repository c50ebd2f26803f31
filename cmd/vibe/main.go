// vibe is a terminal arcade game: drop timed vibes, burn through brick
// walls and clear every enemy to advance.
//
// Usage:
//
//	vibe list                - List available games
//	vibe play                - Play in this terminal
//	vibe serve               - Start SSH server for remote play
//	vibe scores              - Show high scores
//	vibe replay <file>       - Verify a recorded run
//	vibe config              - Print the effective configuration
//	vibe difficulties        - List difficulty presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <dsn>          - SQLite path or postgres:// URL (default: ~/.vibe/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/games/vibe"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDB       string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured before any subcommand runs.
var logger = log.New(os.Stderr)

// logFile is closed when the command finishes.
var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vibe",
	Short: "Vibe - a bomb-laying arcade game for the terminal",
	Long: `Vibe is a grid arcade game played in the terminal or over SSH.
Move with the arrow keys, drop a vibe with space and clear the arena of
enemies without getting caught in the blast.

Available commands:
  list          - Show all available games
  play          - Play in this terminal
  serve         - Start SSH server for remote play
  scores        - View high scores
  replay        - Verify a recorded run
  config        - Print the effective configuration
  difficulties  - List difficulty presets

Examples:
  vibe play
  vibe play --difficulty hard --record run.vibe
  vibe replay run.vibe
  vibe serve --ssh :2222 --db postgres://vibe@localhost/vibe?sslmode=disable
  vibe scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "~/.vibe/scores.db", "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logFile = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "vibe",
		Level:           level,
	})
	vibe.SetLogger(logger)
	return nil
}

// gameLogger returns the logger to use while the TUI owns the terminal.
// Logging to stderr would draw over the game, so it is dropped unless
// a log file is set.
func gameLogger() *log.Logger {
	if flagLogFile != "" {
		return logger
	}
	return log.New(io.Discard)
}
