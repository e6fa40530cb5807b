package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/river/internal/server"
	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/observability"
	"github.com/matzehuels/river/pkg/pipeline"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 10 * time.Second

	envRedisAddr = "RIVER_REDIS_ADDR"
	envMongoURI  = "RIVER_MONGO_URI"
)

type serveFlags struct {
	addr   string
	redis  string
	mongo  string
	prefix string
}

// serveCommand creates the serve command that runs the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	flags := serveFlags{
		addr:  defaultAddr,
		redis: os.Getenv(envRedisAddr),
		mongo: os.Getenv(envMongoURI),
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run an HTTP server that lays out posted forms and exports the stored frames.

Frames and layout results are cached in memory unless a shared backend is
configured with --redis (or ` + envRedisAddr + `) or --mongo (or ` + envMongoURI + `).
Instances that share a backend can serve each other's frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", flags.addr, "listen address")
	cmd.Flags().StringVar(&flags.redis, "redis", flags.redis, "Redis address for the shared cache")
	cmd.Flags().StringVar(&flags.mongo, "mongo", flags.mongo, "MongoDB URI for the shared cache")
	cmd.Flags().StringVar(&flags.prefix, "key-prefix", "", "namespace for cache keys on a shared backend")
	cmd.MarkFlagsMutuallyExclusive("redis", "mongo")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	logger := loggerFromContext(ctx)

	ch, err := serverCache(ctx, flags)
	if err != nil {
		return err
	}
	var keyer cache.Keyer
	if flags.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, flags.prefix+":")
	}
	runner := pipeline.NewRunner(ch, keyer, logger)
	defer runner.Close()

	hooks := observability.NewLogHooks(logger)
	observability.SetLayoutHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	srv := &http.Server{
		Addr:              flags.addr,
		Handler:           server.New(runner, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", flags.addr, "cache", cacheName(flags))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", flags.addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// serverCache connects the configured shared backend, or falls back to an
// in-process memory cache.
func serverCache(ctx context.Context, flags serveFlags) (cache.Cache, error) {
	switch {
	case flags.redis != "":
		c, err := cache.NewRedisCache(ctx, flags.redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return c, nil
	case flags.mongo != "":
		c, err := cache.NewMongoCache(ctx, flags.mongo, cache.DefaultMongoDatabase, cache.DefaultMongoCollection)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return c, nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

func cacheName(flags serveFlags) string {
	switch {
	case flags.redis != "":
		return "redis"
	case flags.mongo != "":
		return "mongo"
	default:
		return "memory"
	}
}
