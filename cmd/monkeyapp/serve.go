package main

import (
	"time"

	"github.com/spf13/cobra"

	"MonkeyApp/internal/monkey"
	"MonkeyApp/pkg/kit"
)

const randomLimitWindow = time.Minute

// NewServeCmd creates the serve command: the same catalog over HTTP.
func NewServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a read-only HTTP API",
		Long: `Serve exposes the catalog over HTTP:

  GET /monkeys                 all monkeys
  GET /monkeys/{name}          one monkey (case-insensitive)
  GET /monkeys/by-name/{name}  same, also for names like "random"
  GET /monkeys/random          a random monkey
  GET /monkeys/random/count    random picks so far
  GET /healthz, /readyz        probes
  GET /metrics                 Prometheus metrics (bearer token, when enabled)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := &monkey.Server{Catalog: a.svc, Log: a.log}
			if a.cfg.Server.RandomLimit > 0 {
				s.RandomLimiter = kit.NewIPRateLimiter(a.cfg.Server.RandomLimit, randomLimitWindow)
			}

			h := monkey.NewHandler(s, monkey.HTTPDeps{
				Log:            a.log,
				Service:        service,
				Registry:       a.registry,
				MetricsEnabled: a.cfg.Server.MetricsEnabled,
				MetricsToken:   a.cfg.Server.MetricsToken,
				TrustProxy:     a.cfg.Server.TrustProxy,
			})
			return kit.RunHTTPServer(cmd.Context(), a.cfg.Server.Addr, h, a.log)
		},
	}

	f := cmd.Flags()
	f.String("addr", "", "listen address (default :8080)")
	f.Bool("metrics", false, "expose /metrics (requires server.metrics_token)")
	_ = a.v.BindPFlag("server.addr", f.Lookup("addr"))
	_ = a.v.BindPFlag("server.metrics_enabled", f.Lookup("metrics"))

	return cmd
}
