package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/buildinfo"
	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/observability"
	"github.com/matzehuels/statcard/pkg/server"
	"github.com/matzehuels/statcard/pkg/source"
)

// serveCommand creates the serve command that runs the card HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stats cards over HTTP",
		Long: `Serve stats cards over HTTP.

Cards are available at /api?username=<name>&<options>, using the same option
names as the query parameters of the hosted card service. Settings come from
the config file and STATCARD_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), cfg, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.host and server.port")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *config.Config, addr string) error {
	logger := loggerFromContext(ctx)
	if !c.verbose {
		if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			logger.SetLevel(level)
		}
	}
	if logger.GetLevel() <= log.DebugLevel {
		observability.NewLogHooks(logger).Register()
		defer observability.Reset()
	}

	src, closeSource, err := openSource(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer closeSource()

	store, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()

	if addr == "" {
		addr = cfg.Server.Addr()
	}
	if cfg.Cache.Backend == config.CacheNone {
		printWarning("Caching is disabled, every request renders")
	}
	printKeyValue("source", src.Name())
	printKeyValue("cache", cfg.Cache.Backend)
	printKeyValue("ttl", cfg.Cache.TTL.String())

	srv := server.New(server.Options{
		Source:         src,
		Cache:          store,
		Keyer:          newKeyer(),
		TTL:            cfg.Cache.TTL,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Logger:         logger,
	})
	printInfo("Serving cards on %s", StyleLink.Render("http://"+addr+"/api?username=<name>"))
	return srv.ListenAndServe(ctx, addr)
}

// newKeyer scopes card keys by build version, so cards rendered by an older
// binary are not served after an upgrade.
func newKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

// openSource creates the stats source named by cfg.Backend.
func openSource(ctx context.Context, cfg config.SourceConfig) (source.Source, func(), error) {
	switch cfg.Backend {
	case config.SourceFile:
		return source.NewFileSource(cfg.Dir), func() {}, nil
	case config.SourceMongo:
		src, err := source.NewMongoSource(ctx, source.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open mongo source: %w", err)
		}
		return src, func() { _ = src.Close(context.Background()) }, nil
	}
	return nil, nil, fmt.Errorf("unknown source backend %q", cfg.Backend)
}

// openCache creates the card cache named by cfg.Backend.
func openCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheFile:
		fc, err := cache.NewFileCache(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, redisOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		return rc, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

func redisOptions(cfg config.CacheConfig) cache.RedisOptions {
	return cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   cfg.RedisPrefix,
	}
}
