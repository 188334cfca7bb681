package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pensionmodeler/pension-modeler/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator as an HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.NewConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			srv := server.New(a.engine, a.parser, a.logger).NewHTTPServer(cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Infof("Starting server on %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "listen port (defaults to $PORT or 8080)")
	return cmd
}
