package menu

import (
	"context"
	"log/slog"

	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/menu.date=date"
)

// Version returns the build version.
func Version() string {
	return version
}

// Run serves the menus produced by build at "/" together with health and
// metrics endpoints. It blocks until ctx is canceled or the server fails.
func Run(ctx context.Context, build Builder, hopts []HandlerOption, opt ...server.Option) error {
	logger.SetDefaultLogger("navmenu", version)
	slog.Info("starting navmenu", "commit", commit, "date", date)

	opt = append(opt,
		server.WithSimpleHealth(),
		server.WithMetrics(),
		server.WithErrorLog(logger.NewLogLogger(slog.LevelError, false)),
	)

	srv := server.New(opt...)

	hopts = append(append([]HandlerOption(nil), hopts...), WithRegisterer(srv.Registry()))
	srv.AddHandler("/", Handler(build, hopts...))

	return srv.Serve(ctx)
}
