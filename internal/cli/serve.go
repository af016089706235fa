package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tintlab/dyeseq/internal/server"
	"github.com/tintlab/dyeseq/pkg/errors"
	"github.com/tintlab/dyeseq/pkg/store"
)

// serveOptions holds the flag values for the serve command.
type serveOptions struct {
	addr      string
	backend   string
	redisAddr string
	redisDB   int
	mongoURI  string
	mongoDB   string
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dyeseq HTTP API",
		Long: `Run the dyeseq HTTP API.

The server exposes search, history, saved results and presets as a JSON
API. History and collections live in the selected store backend; the
memory backend loses everything on restart and exists for development.

Examples:
  dyeseq serve
  dyeseq serve --addr :9000 --store file
  dyeseq serve --store redis --redis-addr redis:6379
  dyeseq serve --store mongo --mongo-uri mongodb://mongo:27017`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.backend, "store", "memory", "store backend: memory, file, redis, mongo")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address (store=redis)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number (store=redis)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb connection string (store=mongo)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", "dyeseq", "mongodb database name (store=mongo)")

	return cmd
}

// newServeStore opens the store backend selected by the serve flags.
func (c *CLI) newServeStore(ctx context.Context, opts serveOptions) (store.Store, error) {
	switch opts.backend {
	case "memory":
		return store.Instrument(store.NewMemoryStore(), "memory"), nil
	case "file":
		return newFileStore()
	case "redis":
		rs, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: opts.redisAddr, DB: opts.redisDB})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store.Instrument(rs, "redis"), nil
	case "mongo":
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongoURI, Database: opts.mongoDB})
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		return store.Instrument(ms, "mongo"), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q (want memory, file, redis or mongo)", opts.backend)
	}
}

// runServe starts the HTTP server and blocks until ctx is canceled,
// then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	st, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(cfg, st, c.Logger)
	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "store", opts.backend)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
