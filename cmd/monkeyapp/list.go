package main

import (
	"github.com/spf13/cobra"

	"MonkeyApp/internal/render"
)

// NewListCmd creates the list command.
func NewListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all monkeys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			all, err := a.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return render.List(cmd.OutOrStdout(), f, all, a.svc.AccessCount())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatTable), "output format: table, json, yaml, markdown")
	return cmd
}
