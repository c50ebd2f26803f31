package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/games/vibe"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Play a recording made with 'vibe play --record' through a fresh
session and check it ends in the recorded state. The recording carries
its own seed, tick rate and configuration, so global flags are ignored.

Examples:
  vibe play --record run.vibe
  vibe replay run.vibe`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	h := rec.Header
	if h.GameID != vibe.GameID {
		return fmt.Errorf("recording is for %q, not %q", h.GameID, vibe.GameID)
	}

	session, err := vibe.NewSession(h.Config, h.Seed)
	if err != nil {
		return err
	}

	preset := h.Preset
	if preset == "" {
		preset = "config"
	}
	fmt.Printf("Recorded %s, seed %d, %d ticks at %d/s, difficulty %s\n",
		h.RecordedAt.Local().Format("2006-01-02 15:04"), h.Seed, rec.Ticks(), h.TickRate, preset)

	got, err := replay.Verify(rec, session)
	fmt.Printf("Score %d, level %d, %s\n", got.Score, got.Level, got.Phase)
	if errors.Is(err, replay.ErrMismatch) {
		return fmt.Errorf("replay diverged: %w", err)
	}
	if err != nil {
		return err
	}

	fmt.Println("OK: replay matches the recorded outcome")
	return nil
}
