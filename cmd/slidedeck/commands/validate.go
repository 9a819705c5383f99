package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidedeck/internal/deck"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a deck file and print its slide count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %q, %d slides\n", args[0], d.Title(), d.SlideCount())
			return nil
		},
	}
}
