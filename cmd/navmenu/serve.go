package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	port            int
	title           string
	shutdownTimeout time.Duration
	certFile        string
	keyFile         string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the menu over HTTP",
		Long:  "Serves a page holding the menu for every path, with the entries matching the request marked active. Exposes /healthz and /metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build, err := loadBuilder(root.file)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, build, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", server.DefaultPort, "port to listen on")
	cmd.Flags().StringVar(&opts.title, "title", "Menu", "page title")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", server.DefaultShutdownTimeout, "grace period for in-flight requests")
	cmd.Flags().StringVar(&opts.certFile, "tls-cert", "", "TLS certificate file")
	cmd.Flags().StringVar(&opts.keyFile, "tls-key", "", "TLS key file")
	cmd.MarkFlagsRequiredTogether("tls-cert", "tls-key")

	return cmd
}

func runServer(ctx context.Context, build menu.Builder, root *rootOptions, opts *serveOptions) error {
	sopts := []server.Option{
		server.WithPort(opts.port),
		server.WithShutdownTimeout(opts.shutdownTimeout),
	}
	if opts.certFile != "" {
		sopts = append(sopts, server.WithTLS(server.TLSConfig{CertFile: opts.certFile, KeyFile: opts.keyFile}))
	}

	hopts := []menu.HandlerOption{
		menu.WithRoot(root.root),
		menu.WithTitle(opts.title),
	}

	return menu.Run(ctx, build, hopts, sopts...)
}
