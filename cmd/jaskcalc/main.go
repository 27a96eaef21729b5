package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var tape *service.TapeService
	if cfg.Tape.Enabled {
		db, err := database.Open()
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		tape = &service.TapeService{Entries: repository.NewTapeRepo(db), MaxEntries: cfg.Tape.MaxEntries}
	}

	// the alt screen owns stdout; log lines go to a file or nowhere
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "jaskcalc")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.New(ctx, cfg, tape), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
