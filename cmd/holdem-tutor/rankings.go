package main

import (
	"github.com/pterm/pterm"

	"github.com/lox/holdem-tutor/internal/guidance"
)

// RankingsCmd prints the hand rankings, strongest first
type RankingsCmd struct{}

func (c *RankingsCmd) Run(g *Globals) error {
	pterm.DefaultSection.Println("Poker hand rankings")

	data := pterm.TableData{{"Hand", "Description", "Example", "Odds"}}
	for _, r := range guidance.HandRankings() {
		data = append(data, []string{r.Hand, r.Description, r.Example, r.Odds})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}
