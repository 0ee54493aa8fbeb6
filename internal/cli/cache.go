package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered card cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached cards from the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var count int
			switch cfg.Cache.Backend {
			case config.CacheNone:
				printInfo("Caching is disabled")
				return nil
			case config.CacheRedis:
				rc, err := cache.NewRedisCache(cmd.Context(), redisOptions(cfg.Cache))
				if err != nil {
					return fmt.Errorf("open redis cache: %w", err)
				}
				defer rc.Close()
				if count, err = rc.Clear(cmd.Context()); err != nil {
					return err
				}
				printSuccess("Cleared %d cached cards", count)
				printDetail("Redis: %s (prefix %q)", cfg.Cache.RedisAddr, cfg.Cache.RedisPrefix)
			default:
				fc, err := cache.NewFileCache(cfg.Cache.Dir)
				if err != nil {
					return err
				}
				if count, err = fc.Clear(); err != nil {
					return err
				}
				printSuccess("Cleared %d cached cards", count)
				printDetail("Directory: %s", fc.Dir())
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Cache.Dir)
			return nil
		},
	}
}
