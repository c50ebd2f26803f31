package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}

// gameArg resolves the optional game argument of play and scores.
func gameArg(args []string, fallback string) (string, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown game %q, run 'vibe list' to see available games", args[0])
	}
	return args[0], nil
}
