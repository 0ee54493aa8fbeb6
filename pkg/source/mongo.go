package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/statcard/pkg/statscard"
)

// Default MongoDB names.
const (
	DefaultMongoDatabase   = "statcard"
	DefaultMongoCollection = "stats"
)

// MongoSource reads records from a collection keyed by a lowercase
// "username" field.
type MongoSource struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// statsDocument is the stored form of a record.
type statsDocument struct {
	Username        string `bson:"username"`
	statscard.Stats `bson:",inline"`
}

// MongoOptions configures [NewMongoSource].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration // connect timeout, default 10s
}

// NewMongoSource connects to MongoDB and pings the primary.
func NewMongoSource(ctx context.Context, opts MongoOptions) (*MongoSource, error) {
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoSource{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

// Name implements [Source].
func (s *MongoSource) Name() string { return "mongo" }

// Fetch implements [Source]. Network errors and timeouts are retryable.
func (s *MongoSource) Fetch(ctx context.Context, username string) (statscard.Stats, error) {
	var doc statsDocument
	err := s.coll.FindOne(ctx, bson.M{"username": strings.ToLower(username)}).Decode(&doc)
	if err != nil {
		return statscard.Stats{}, findError(username, err)
	}
	return doc.Stats, nil
}

// findError maps driver errors: a missing document is [ErrNotFound], and
// network errors and timeouts are retryable.
func findError(username string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", username, ErrNotFound)
	case mongo.IsNetworkError(err) || mongo.IsTimeout(err):
		return Retryable(err)
	}
	return fmt.Errorf("find %s: %w", username, err)
}

// Put upserts the record of username.
func (s *MongoSource) Put(ctx context.Context, username string, stats statscard.Stats) error {
	key := strings.ToLower(username)
	doc := statsDocument{Username: key, Stats: stats}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"username": key}, doc, options.Replace().SetUpsert(true))
	return err
}

// Close disconnects the client.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Source = (*MongoSource)(nil)
