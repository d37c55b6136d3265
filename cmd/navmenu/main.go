package main

import (
	"fmt"
	"os"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	file string
	root string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "navmenu",
		Short:         "Build, render and serve nested HTML menus",
		Long:          "navmenu renders menus described in YAML, marking the entries that match a request URL as active.",
		Version:       menu.Version(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "menu definition file (default: built-in demo menu)")
	cmd.PersistentFlags().StringVar(&opts.root, "root", menu.DefaultRoot, "site root, only matched exactly")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newServeCmd(opts))

	return cmd
}
