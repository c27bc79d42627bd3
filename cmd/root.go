package cmd

import (
	"github.com/spf13/cobra"
)

type globalFlags struct {
	envFile   string
	dataDir   string
	backend   string
	key       string
	exportDir string
	logFile   string
	verbose   bool
}

// Execute runs the canvas command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Running it without a
// subcommand opens the interactive canvas.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "canvas",
		Short: "Diagnostic canvas: twelve questions, one card each",
		Long: `canvas walks through the twelve blocks of the business diagnostic canvas.

Answers are saved locally after every change and can be exported as a
plain-text report. Run without arguments to open the interactive canvas.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", ".env", "dotenv file with CANVAS_* settings")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory for saved answers (overrides CANVAS_DATA_DIR)")
	pf.StringVar(&flags.backend, "storage", "", "storage backend: file, sqlite or memory (overrides CANVAS_STORAGE)")
	pf.StringVar(&flags.key, "key", "", "storage key for the answers (overrides CANVAS_STORAGE_KEY)")
	pf.StringVar(&flags.exportDir, "export-dir", "", "directory for exported reports (overrides CANVAS_EXPORT_DIR)")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file (overrides CANVAS_LOG_FILE)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newStatusCmd(flags),
		newAnswerCmd(flags),
		newToggleCmd(flags),
		newClearCmd(flags),
		newResetCmd(flags),
		newExportCmd(flags),
		newCheckCmd(flags),
	)
	return root
}
