package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"diagnostic-canvas/internal/logging"
	"diagnostic-canvas/internal/selfcheck"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the built-in self-check of catalog, progress and report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:   cfg.Log.Level,
				Verbose: flags.verbose,
				File:    cfg.Log.File,
			})
			if err != nil {
				return err
			}
			defer logger.Sync()

			results := selfcheck.Run(logger)
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Passed {
					fmt.Fprintf(out, "PASS  %s\n", r.Name)
					continue
				}
				failed++
				fmt.Fprintf(out, "FAIL  %s: %s\n", r.Name, r.Detail)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			fmt.Fprintf(out, "\n%d checks passed\n", len(results))
			return nil
		},
	}
}
