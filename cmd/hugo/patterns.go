package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugo/internal/games/hugo"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the obstacle pattern table",
	Long: `Print every obstacle pattern of the effective config. Each rope is
shown as blocked (bat) or free.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

var (
	patternTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	blockedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	freeStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
)

func runPatterns(_ *cobra.Command, _ []string) error {
	cfg := gameConfig
	table, err := hugo.NewPatternTable(cfg.Obstacles.Patterns, cfg.World.NumLanes)
	if err != nil {
		return err
	}

	fmt.Println(patternTitleStyle.Render(fmt.Sprintf("%d patterns, %d lanes", len(table), cfg.World.NumLanes)))
	for _, p := range table {
		cells := make([]string, cfg.World.NumLanes)
		for lane := range cells {
			if p.Blocks(lane) {
				cells[lane] = blockedStyle.Render("[W]")
			} else {
				cells[lane] = freeStyle.Render("[|]")
			}
		}
		kind := "pair"
		if p.SingleLane() {
			kind = "single"
		}
		fmt.Printf("  %-12s %s  %s\n", p.Name, strings.Join(cells, " "), kind)
	}
	return nil
}
