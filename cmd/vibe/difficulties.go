package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty preset applied to the default configuration.`,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-5s  %-7s  %s\n", "Preset", "Lives", "Fill", "Start", "Progression")
	fmt.Printf("  %-8s  %-5s  %-5s  %-7s  %s\n", "------", "-----", "----", "-----", "-----------")

	for _, p := range presets {
		cfg := config.DefaultVibeConfig()
		config.ApplyVibePreset(&cfg, p)

		progression := "off"
		if cfg.Difficulty.Enabled {
			progression = fmt.Sprintf("max at level %d", cfg.Difficulty.Progression.MaxAt)
		}
		fmt.Printf("  %-8s  %-5d  %-5.2f  %-7.2f  %s\n",
			p, cfg.Session.Lives, cfg.Arena.Fill, cfg.Difficulty.InitialLevel, progression)
	}

	fmt.Println()
	fmt.Println("Run 'vibe play --difficulty <preset>' to use one.")
}
