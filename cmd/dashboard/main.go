/*
main.go - Terminal dashboard entry point

PURPOSE:
  Starts the interactive cohort projection dashboard in the terminal.
  The dashboard edits one plan at a time and recomputes the projection
  on every keystroke.

COMMAND-LINE FLAGS:
  -scenarios  YAML scenario file to load on top of the builtin presets
  -scenario   Scenario id to open with (default: first in the catalog)

EXAMPLES:
  # Browse the builtin presets
  ./dashboard

  # Open a custom scenario from a file
  ./dashboard -scenarios=./scenarios.yaml -scenario=expansion

SEE ALSO:
  - tui/model.go: Dashboard state and key handling
  - catalog/catalog.go: Scenario storage
*/
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warp/cohort-engine/catalog"
	"github.com/warp/cohort-engine/tui"
)

func main() {
	scenarios := flag.String("scenarios", "", "YAML scenario file to load")
	scenario := flag.String("scenario", "", "scenario id to open with")
	flag.Parse()

	cat := catalog.NewWithDefaults()
	if *scenarios != "" {
		if err := cat.LoadFile(*scenarios); err != nil {
			log.Fatalf("Failed to load scenarios: %v", err)
		}
	}

	model, err := tui.New(cat, *scenario)
	if err != nil {
		log.Fatalf("Failed to start dashboard: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Dashboard crashed: %v", err)
	}
}
