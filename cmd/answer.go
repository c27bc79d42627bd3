package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnswerCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "answer <block-id> [text...]",
		Short: "Set the answer of a block (reads stdin when no text is given)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read answer from stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}

			return mutate(cmd, flags, func(a *app) error {
				return a.store.SetAnswer(args[0], text)
			})
		},
	}
}

func newToggleCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <block-id>",
		Short: "Mark a block complete, or unmark it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(a *app) error {
				return a.store.ToggleComplete(args[0])
			})
		},
	}
}

func newClearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <block-id>",
		Short: "Empty the answer of a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(a *app) error {
				return a.store.ClearAnswer(args[0])
			})
		},
	}
}

func newResetCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop every answer and completed flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(a *app) error {
				a.store.Reset()
				return nil
			})
		},
	}
}

// mutate opens the store, applies fn and fails when the result was not saved.
func mutate(cmd *cobra.Command, flags *globalFlags, fn func(a *app) error) error {
	a, err := newApp(flags, false)
	if err != nil {
		return err
	}
	defer a.Close()

	before := a.metrics.GetSnapshot()
	if err := fn(a); err != nil {
		a.logger.Warn("command rejected", zap.String("command", cmd.Name()), zap.Error(err))
		return err
	}
	return a.checkSaved(before)
}
