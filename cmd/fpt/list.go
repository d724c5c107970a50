package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpt/internal/config"
	"github.com/vovakirdan/fpt/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows every registered mode with the view it draws. The mode that
'fpt play' starts without an argument is marked with *.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// viewer is implemented by modes that report their view.
type viewer interface {
	View() string
}

func runList(cmd *cobra.Command, args []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return nil
	}

	defaultView := config.DefaultFPTConfig().View.Mode
	if cfg, err := config.Load(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defaultView = cfg.View.Mode
	}

	type row struct {
		id, view, title string
	}
	rows := make([]row, 0, len(games))
	idW, viewW := len("ID"), len("VIEW")
	for _, info := range games {
		view := "-"
		if g, err := registry.Create(info.ID); err == nil {
			if v, ok := g.(viewer); ok {
				view = v.View()
			}
		}
		rows = append(rows, row{id: info.ID, view: view, title: info.Title})
		idW = max(idW, len(info.ID))
		viewW = max(viewW, len(view))
	}

	fmt.Printf("    %-*s  %-*s  %s\n", idW, "ID", viewW, "VIEW", "TITLE")
	for _, r := range rows {
		mark := " "
		if r.view == defaultView {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %-*s  %s\n", mark, idW, r.id, viewW, r.view, r.title)
	}

	fmt.Println()
	fmt.Println("Run 'fpt play <id>' to play a mode.")
	return nil
}
