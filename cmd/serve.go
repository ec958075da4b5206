package cmd

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the study planner actions over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		rt, err := setup(cmd, setupOpts{metrics: actions.NewMetrics(reg)})
		if err != nil {
			return err
		}
		defer rt.Close()
		reg.MustRegister(collectors.NewDBStatsCollector(rt.store.DB(), "events"))

		addr := rt.cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		srv := server.New(server.Options{
			Service:   rt.service,
			Gatherer:  reg,
			AccessLog: cmd.ErrOrStderr(),
		})

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Listen(addr)
		}()
		rt.logger.Info("listening", zap.String("addr", addr))

		select {
		case err := <-errCh:
			return fmt.Errorf("listen on %s: %w", addr, err)
		case <-cmd.Context().Done():
		}

		rt.logger.Info("shutting down")
		if err := srv.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides STUDYPLANNER_ADDR, default :8080)")
}
