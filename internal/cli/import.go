package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/source"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// recordStore accepts stats records. [source.MongoSource] implements it.
type recordStore interface {
	Put(ctx context.Context, username string, stats statscard.Stats) error
}

// importCommand creates the import command that loads stats records into
// the MongoDB source.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Load stats records (.toml or .json) into MongoDB",
		Long: `Load stats records into the MongoDB collection configured under source.

Each file is stored under the username taken from its file name, replacing
any existing record for that user.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Source.Backend != config.SourceMongo {
				printWarning("source.backend is %q, the server will not read imported records", cfg.Source.Backend)
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			store, err := source.NewMongoSource(ctx, source.MongoOptions{
				URI:        cfg.Source.MongoURI,
				Database:   cfg.Source.MongoDatabase,
				Collection: cfg.Source.MongoCollection,
			})
			if err != nil {
				return fmt.Errorf("open mongo source: %w", err)
			}
			defer store.Close(context.Background())

			n, err := importRecords(ctx, store, args)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Imported %d record(s)", n))
			printDetail("%s/%s.%s", cfg.Source.MongoURI, cfg.Source.MongoDatabase, cfg.Source.MongoCollection)
			return nil
		},
	}
}

// importRecords stores every file under its record name and returns how many
// were stored. It stops at the first failure.
func importRecords(ctx context.Context, store recordStore, files []string) (int, error) {
	for i, path := range files {
		stats, err := source.ReadFile(path)
		if err != nil {
			return i, err
		}
		if err := store.Put(ctx, recordName(path), stats); err != nil {
			return i, fmt.Errorf("store %s: %w", path, err)
		}
	}
	return len(files), nil
}
