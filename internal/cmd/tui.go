package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5/osfs"

	"fscout/internal/config"
	"fscout/internal/eventbus"
	"fscout/internal/search"
	"fscout/internal/ui"
	"fscout/internal/walker"
)

// runTUI wires the services together and runs the interactive interface.
func runTUI(targetDir string) error {
	// Set up logging
	logFile, err := os.OpenFile("fscout.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Resolve the initial root: flag/arg beats config beats cwd
	if targetDir != "" {
		absDir, err := filepath.Abs(targetDir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", targetDir, err)
		}
		cfg.RootDir = absDir
	}
	if cfg.RootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		cfg.RootDir = cwd
	}

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.RootDir = event.RootDir
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
	})

	// Initialize services
	fs := osfs.New("/")
	_ = search.NewService(bus, fs) // search service subscribes to events automatically

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, walker.New(fs))

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSearchStarted, forward)
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// Cleanup
	close(eventChan)
	return nil
}
