package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"appliancefit/internal/api"
	"appliancefit/internal/compat"
	"appliancefit/internal/observability"
)

var (
	serveAddr      string
	requestTimeout time.Duration
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the compare and scrape HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: HTTP_ADDR)")
	serveCmd.Flags().DurationVar(&requestTimeout, "request-timeout", 90*time.Second, "per-request timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	a := newApp(ctx, cfg)
	defer a.Close()

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort)
	}

	svc := compat.NewService(a.catalogs, a.scraper)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(svc, a.scraper, requestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("[HTTP] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("[HTTP] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
