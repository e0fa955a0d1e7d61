package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdziat/jobs-filter/ui"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only jobs API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := newRuntime(ctx, v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close()

			gin.SetMode(gin.ReleaseMode)
			srv := &http.Server{
				Addr:              v.GetString(keyAddr),
				Handler:           ui.Handler(rt.store, ui.WithLogger(rt.logger)),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(ctx, srv, rt)
		},
	}
	cmd.Flags().String(keyAddr, ":8080", "listen address")
	_ = v.BindPFlag(keyAddr, cmd.Flags().Lookup(keyAddr))
	return cmd
}

// serve runs srv until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, srv *http.Server, rt *runtime) error {
	errCh := make(chan error, 1)
	go func() {
		rt.logger.InfoContext(ctx, "jobs api listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	rt.logger.Info("shutting down jobs api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
