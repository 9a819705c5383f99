package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
	"slidedeck/internal/trace"
	"slidedeck/internal/ui"
)

type presentOptions struct {
	deckPath string
	autoplay bool
	interval time.Duration
	logFile  string
	verbose  bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts presentOptions
	root := &cobra.Command{
		Use:          "slidedeck",
		Short:        "Present a slide deck in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return present(cmd.Context(), opts)
		},
	}

	root.Flags().StringVar(&opts.deckPath, "deck", "", "YAML deck file (default: built-in demo deck)")
	root.Flags().BoolVar(&opts.autoplay, "autoplay", false, "start with autoplay running")
	root.Flags().DurationVar(&opts.interval, "interval", input.DefaultInterval, "autoplay interval")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log with timestamps and file positions")

	root.AddCommand(validateCmd(), statsCmd(), exportCmd())
	return root
}

// loadDeck returns the deck at path, or the built-in deck when path is empty.
func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Builtin(), nil
	}
	return deck.Load(path)
}

func present(ctx context.Context, opts presentOptions) error {
	if opts.interval <= 0 {
		return &deck.ConfigurationError{Field: "interval", Reason: "must be positive"}
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "slidedeck")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if opts.verbose {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	d, err := loadDeck(opts.deckPath)
	if err != nil {
		return err
	}

	app, err := ui.NewAppModel(ui.Config{
		Deck:             d,
		Autoplay:         opts.autoplay,
		AutoplayInterval: opts.interval,
	})
	if err != nil {
		return err
	}

	provider, err := trace.NewProvider(ctx)
	if err != nil {
		log.Printf("commands.present: tracing disabled: %v", err)
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("commands.present: trace shutdown: %v", err)
			}
		}()
		tracer := trace.NewSlideTracer(ctx, provider, d)
		defer tracer.Close()
		app.Session.Observe(tracer)
	}
	log.Printf("commands.present: %q, %d slides, autoplay=%v", d.Title(), d.SlideCount(), opts.autoplay)

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}
	return nil
}
