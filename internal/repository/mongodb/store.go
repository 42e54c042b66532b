// Package mongodb implements the repository contracts on top of the document
// store. Each entity gets its own collection; ids are opaque strings (UUIDs,
// except standings which are keyed by season).
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hoopsim/league-service/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Pending and archived matches are deliberately separate
// collections: a match lives in exactly one of them at any time.
const (
	teamsCollection       = "teams"
	playersCollection     = "players"
	coachesCollection     = "coaches"
	matchesCollection     = "matches"
	archivedCollection    = "archived"
	possessionsCollection = "possessions"
	standingsCollection   = "standings"
)

// Store encapsulates the mongo client and database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// New connects to the document store and verifies the connection with a ping.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("mongo uri is required")
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	l := logger.With().Str("module", "repository").Str("component", "mongo").Logger()
	l.Info().Str("database", cfg.Mongo.Database).Msg("connected to document store")

	return &Store{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
		log:    l,
	}, nil
}

// Ping satisfies repository.Pinger for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
