package main

import (
	"bowshell/internal/api"
	"bowshell/internal/api/handler/v1handler"
	"bowshell/internal/shell"
	"bowshell/pkg/logger"
	"bowshell/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the navigation check API on loopback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}
			}()

			links := e.cfg.DeepLinkResolver()
			nav, err := shell.NewNavigator(e.guard, links, mp.Meter("bowshell"))
			if err != nil {
				return err
			}

			server := api.NewServer(ctx, api.Deps{
				Deps: v1handler.Deps{
					Navigator: nav,
					Links:     links,
					Policy:    e.guard.Policy(),
				},
				Origins: e.guard.Allowed,
			}, api.NewOptions(e.cfg))

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				logger.Info(ctx, "starting navigation api...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start navigation api: %w", err)
				}

				return nil
			})

			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), e.cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping navigation api...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("could not stop navigation api: %w", err)
				}

				return nil
			})

			return g.Wait()
		},
	}
}
