package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diagnostic-canvas/internal/catalog"
	"diagnostic-canvas/internal/progress"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress and which blocks are done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			blocks := catalog.Blocks()
			stats := progress.Calculate(blocks, a.store.Answers())

			fmt.Fprintln(out, catalog.Title())
			fmt.Fprintf(out, "Progreso: %s\n\n", stats)
			for _, b := range blocks {
				mark := " "
				if a.store.VisuallyComplete(b.ID) {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %s %s (%s)\n", mark, b.Number, b.Title, b.ID)
			}
			return nil
		},
	}
}
