// Package cli provides the command-line interface for swipeshow.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"swipeshow/internal/config"
	"swipeshow/internal/deck"
	"swipeshow/internal/domain"
	"swipeshow/internal/eventbus"
	"swipeshow/internal/ui"
)

// Version is set at build time with -ldflags "-X swipeshow/internal/cli.Version=..."
var Version = "dev"

// runner starts the TUI; tests replace it
type runner func(cfg config.Config, d *domain.Deck) error

// NewRootCommand builds the swipeshow command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(runProgram)
}

func newRootCommand(run runner) *cobra.Command {
	root := &cobra.Command{
		Use:   "swipeshow [deck.toml]",
		Short: "A swipeable slideshow for the terminal",
		Long: `swipeshow shows a deck of slides in the terminal. Slides advance on a
timer and can be changed with the keyboard, by clicking the controls or by
dragging the slide strip with the mouse.

Without a deck file a built-in sample deck is shown.`,
		Example: `
swipeshow
swipeshow talk.toml --watch
swipeshow talk.toml --interval 10s --no-autostart
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path, cmd.Flags())
			if err != nil {
				return err
			}

			d := deck.Sample()
			if len(args) == 1 {
				d, err = deck.Load(args[0])
				if err != nil {
					return err
				}
			}
			return run(cfg, d)
		},
	}
	config.RegisterFlags(root.Flags())

	root.AddCommand(newInitCommand(), newVersionCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swipeshow %s\n", Version)
		},
	}
}

func newInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the sample deck to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "deck.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := deck.Write(path, deck.Sample()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// runProgram runs the slideshow until the user quits
func runProgram(cfg config.Config, d *domain.Deck) error {
	// Set up logging
	logFile, err := tea.LogToFile(cfg.LogFile, "")
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
	}

	if d.Path != "" {
		log.Printf("Starting swipeshow %s with %s", Version, filepath.Base(d.Path))
	} else {
		log.Printf("Starting swipeshow %s with the sample deck", Version)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventSlideActivated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SlideActivatedEvent); ok {
			log.Printf("Slide %d activated (%q)", event.Index+1, event.Title)
		}
	})
	bus.Subscribe(eventbus.EventAssetsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AssetsLoadedEvent); ok {
			log.Printf("Slides loaded: %d ok, %d failed", event.Loaded, event.Failed)
		}
	})

	model := ui.NewModel(bus, cfg, d)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	model.SetProgram(p)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			p.Quit()
		}
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
