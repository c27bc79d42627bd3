package cmd

import (
	"github.com/spf13/cobra"

	"diagnostic-canvas/internal/ui"
)

func runInteractive(cmd *cobra.Command, flags *globalFlags) error {
	a, err := newApp(flags, true)
	if err != nil {
		return err
	}
	defer a.Close()

	return ui.Run(ui.Options{
		Store:     a.store,
		ExportDir: a.cfg.Export.Dir,
		Logger:    a.logger,
		DarkMode:  a.cfg.UI.DarkMode,
	})
}
