package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"MonkeyApp/internal/monkey"
	"MonkeyApp/internal/render"
)

// NewRandomCmd creates the random command.
func NewRandomCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random monkey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			out := cmd.OutOrStdout()
			for range count {
				m, err := a.svc.PickRandom(cmd.Context())
				if errors.Is(err, monkey.ErrEmptyCatalog) {
					return errors.New("no monkeys available")
				}
				if err != nil {
					return err
				}
				if err := render.Details(out, m); err != nil {
					return err
				}
				fmt.Fprintf(out, "Random monkey accessed %d times.\n", a.svc.AccessCount())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of random picks")
	return cmd
}
