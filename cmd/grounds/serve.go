package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/shooting-grounds/internal/api"
	"github.com/vovakirdan/shooting-grounds/internal/games/gallery"
	"github.com/vovakirdan/shooting-grounds/internal/metrics"
	"github.com/vovakirdan/shooting-grounds/internal/platform/tui"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
	flagCORSOrigins []string
	flagRateLimit   float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server and optional HTTP API",
	Long: `Start an SSH server that lets users connect and shoot.

Each SSH connection gets its own session with a range picker menu.
Results are stored per server, so all players share the leaderboard.

With --http, a read-only JSON API, Prometheus metrics at /metrics and a
live websocket feed at /ws/live are served as well.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.grounds/host_key

Examples:
  grounds serve                           # Listen on :23234 with auto-generated key
  grounds serve --ssh :2222               # Listen on port 2222
  grounds serve --http :8080              # Also serve the HTTP API
  grounds serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address, empty to disable (e.g. :8080)")
	serveCmd.Flags().StringSliceVar(&flagCORSOrigins, "cors", nil, "Allowed CORS and websocket origins (default: localhost)")
	serveCmd.Flags().Float64Var(&flagRateLimit, "rate", api.DefaultRateLimitConfig.RequestsPerSecond, "API requests per second per client IP")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitError("opening results database: %v", err)
	}
	defer store.Close()

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)
	hub := api.NewHub(logger.WithPrefix("grounds-live"), flagCORSOrigins)
	gallery.SetObserver(gallery.Observers{recorder, hub})
	setupGallery(store, logger)

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		Store:       store,
		Sessions:    recorder,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	})
	if err != nil {
		store.Close()
		exitError("creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if flagHTTPAddr != "" {
		rlc := api.DefaultRateLimitConfig
		rlc.RequestsPerSecond = flagRateLimit
		httpServer := &http.Server{
			Addr: flagHTTPAddr,
			Handler: api.NewRouter(api.RouterConfig{
				Store:           store,
				Hub:             hub,
				Gatherer:        prometheus.DefaultGatherer,
				RateLimitConfig: &rlc,
				CORSOrigins:     flagCORSOrigins,
				Logger:          logger.WithPrefix("grounds-http"),
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		eg.Go(func() error {
			logger.Info("starting HTTP API", "address", flagHTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	logger.Info("ready, press Ctrl+C to stop", "ssh", flagSSHAddr)
	if err := eg.Wait(); err != nil {
		store.Close()
		exitError("server: %v", err)
	}
}
