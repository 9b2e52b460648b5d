package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mrhapile/fish-health-diagnoser/pkg/engine"
	"github.com/mrhapile/fish-health-diagnoser/pkg/metrics"
	"github.com/mrhapile/fish-health-diagnoser/pkg/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagnosis HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cfg.Debug {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			eng := engine.NewDefault()
			a.log.Info("decision engine ready",
				zap.String("model_type", eng.ModelType()),
				zap.Strings("rules", eng.RuleIDs()),
				zap.Bool("debug", cfg.Debug),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, eng, a.log, metrics.NewRecorder()).Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured listen port")
	return cmd
}
