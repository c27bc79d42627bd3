package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"diagnostic-canvas/internal/report"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plain-text report",
		Long:  "Writes the report to <export-dir>/" + report.Filename + ", or to stdout with --stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if toStdout {
				_, err := fmt.Fprint(cmd.OutOrStdout(), report.BuildCanvas(a.store.Answers()))
				return err
			}

			path, err := report.Export(a.cfg.Export.Dir, a.store.Answers())
			if err != nil {
				return err
			}
			a.metrics.IncrementExports()
			a.logger.Info("report exported", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the report instead of writing a file")
	return cmd
}
