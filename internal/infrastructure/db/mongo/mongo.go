package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. A default timeout
// is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes bootstraps every collection index the portal relies on:
// unique emails on users and the distribution list, and the created_at sort
// index backing the newest-first prospect listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := NewUserRepository(db).EnsureIndexes(indexCtx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := NewProspectRepository(db).EnsureIndexes(indexCtx); err != nil {
		return fmt.Errorf("prospects indexes: %w", err)
	}
	if err := NewRecipientRepository(db).EnsureIndexes(indexCtx); err != nil {
		return fmt.Errorf("email_recipients indexes: %w", err)
	}
	return nil
}
