package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"slidedeck/internal/deck"
	"slidedeck/internal/easing"
)

// statsCmd lists every statistic with the target the animator counts to.
// Values that do not parse are shown as static.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Show how each statistic will animate",
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
			fmt.Fprintln(cmd.OutOrStdout(), statsTable(d))
			return nil
		},
	}
}

func statsTable(d *deck.Deck) *table.Table {
	t := table.New().Headers("SLIDE", "LABEL", "VALUE", "TARGET", "SHORT", "FORMAT")
	for i := range d.SlideCount() {
		for _, st := range d.Slide(i).Stats {
			target, short, format := "static", "-", "-"
			if n, ok := easing.ParseTarget(st.Value); ok {
				target = easing.FormatValue(n, easing.FormatPlain)
				short = easing.Compact(n)
				format = easing.DetectFormat(st.Value).String()
			}
			t.Row(strconv.Itoa(i+1), st.Label, st.Value, target, short, format)
		}
	}
	return t
}
