package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"MonkeyApp/internal/monkey"
	"MonkeyApp/internal/render"
)

// NewFindCmd creates the find command. Multiple args are joined, so
// `monkeyapp find blue monkey` works without quoting.
func NewFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Show details for a monkey by name (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			m, err := a.svc.FindByName(cmd.Context(), name)
			if errors.Is(err, monkey.ErrNotFound) {
				return fmt.Errorf("monkey '%s' not found", name)
			}
			if err != nil {
				return err
			}
			return render.Details(cmd.OutOrStdout(), m)
		},
	}
}
