package commands

import (
	"github.com/spf13/cobra"

	"slidedeck/internal/deck"
)

// exportCmd writes a deck as YAML, by default the built-in one, so it can be
// used as a starting point for --deck.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Print a deck as YAML (default: the built-in deck)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			d, err := loadDeck(path)
			if err != nil {
				return err
			}
			data, err := deck.Marshal(d)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
