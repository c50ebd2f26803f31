package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The search order is --config, ~/.vibe/configs/vibe.yaml,
./configs/vibe.yaml and finally the built-in defaults. The difficulty
preset is applied on top.

Examples:
  vibe config
  vibe config --difficulty hard
  vibe config --defaults > ~/.vibe/configs/vibe.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(vibe.GameID))
		return err
	}

	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	vibe.SetConfigPath(flagConfig)
	vibe.SetDifficultyPreset(flagDifficulty)

	cfg, err := vibe.LoadConfig()
	if err != nil {
		return err
	}
	if _, err := vibe.NewSession(cfg, 1); err != nil {
		logger.Warn("configuration is not playable", "err", err)
	}

	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
