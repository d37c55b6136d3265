package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render [url]",
		Short: "Render the menu as HTML",
		Long:  "Renders the menu to stdout. When a URL is given, matching entries are marked active.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := loadBuilder(opts.file)
			if err != nil {
				return err
			}

			m := build(nil)
			if m == nil {
				return fmt.Errorf("menu definition produced no menu")
			}

			if len(args) == 1 {
				m.SetActiveFromURL(args[0], opts.root)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Render())
			return err
		},
	}
}
