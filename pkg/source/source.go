// Package source looks up the stats record of a user.
//
// A [Source] returns [statscard.Stats] for a username. [FileSource] reads
// TOML or JSON records from a directory and [MongoSource] reads a MongoDB
// collection. [Fetch] wraps any source with retries for transient failures
// and observability hooks.
package source

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/statcard/pkg/observability"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// ErrNotFound is returned when no record exists for a username.
var ErrNotFound = errors.New("stats not found")

// Source returns stats by username.
type Source interface {
	// Name identifies the source in logs, e.g. "file" or "mongo".
	Name() string

	// Fetch returns the stats of username or an error wrapping ErrNotFound.
	Fetch(ctx context.Context, username string) (statscard.Stats, error)
}

// Fetch calls src.Fetch, retrying errors marked [Retryable], and reports the
// lookup to the registered source hooks. Records without a display name get
// the username.
func Fetch(ctx context.Context, src Source, username string) (statscard.Stats, error) {
	start := time.Now()
	var stats statscard.Stats
	err := RetryWithBackoff(ctx, func() error {
		var err error
		stats, err = src.Fetch(ctx, username)
		return err
	})
	observability.Source().OnFetch(ctx, src.Name(), username, time.Since(start), err)
	if err != nil {
		return statscard.Stats{}, err
	}
	if stats.Name == "" {
		stats.Name = username
	}
	return stats, nil
}
