// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// TitleTextIndexName is the name MongoDB gives a text index on primaryTitle.
const TitleTextIndexName = "primaryTitle_text"

const appName = "marquee"

// MongoStore reads and updates the movies collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	cfg    *config.MongoConfig
	log    zerolog.Logger
}

// Connect creates a client for cfg.URI and verifies the primary is reachable
// within cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to reach mongo at %s: %w", cfg.String(), err)
	}

	store := &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:    cfg,
		log:    logging.WithComponent("mongo"),
	}
	store.log.Info().Str("target", cfg.String()).Msg("Connected to MongoDB")
	return store, nil
}

// EnsureTextIndex creates the primaryTitle text index used by title search.
// Creating an index that already exists with the same keys is a no-op.
func (s *MongoStore) EnsureTextIndex(ctx context.Context) (err error) {
	ctx, cancel := s.withOperationTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("create_index", s.cfg.Collection, time.Since(start), err) }()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: query.FieldPrimaryTitle, Value: "text"}},
		Options: options.Index().SetName(TitleTextIndexName),
	}
	name, ierr := s.coll.Indexes().CreateOne(ctx, model)
	if ierr != nil {
		return s.opError("create_index", ierr)
	}

	s.log.Info().Str("index", name).Msg("Text index ready")
	return nil
}

// FindMovies runs criteria as find().sort().skip().limit().
func (s *MongoStore) FindMovies(ctx context.Context, criteria *query.Criteria) (movies []models.Movie, err error) {
	ctx, cancel := s.withOperationTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("find", s.cfg.Collection, time.Since(start), err) }()

	opts := options.Find().
		SetSort(criteria.Sort).
		SetSkip(criteria.Pagination.Skip()).
		SetLimit(criteria.Pagination.Limit)

	cursor, ferr := s.coll.Find(ctx, criteria.Filter, opts)
	if ferr != nil {
		return nil, s.opError("find", ferr)
	}

	movies = make([]models.Movie, 0, criteria.Pagination.Limit)
	if ferr := cursor.All(ctx, &movies); ferr != nil {
		return nil, s.opError("find", ferr)
	}

	metrics.MoviesReturned.Observe(float64(len(movies)))
	return movies, nil
}

// FindMovieByID returns one movie by _id.
func (s *MongoStore) FindMovieByID(ctx context.Context, id bson.ObjectID) (movie *models.Movie, err error) {
	ctx, cancel := s.withOperationTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		if errors.Is(err, ErrMovieNotFound) {
			metrics.RecordDBQuery("find_one", s.cfg.Collection, time.Since(start), nil)
			return
		}
		metrics.RecordDBQuery("find_one", s.cfg.Collection, time.Since(start), err)
	}()

	var m models.Movie
	if ferr := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&m); ferr != nil {
		if errors.Is(ferr, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, s.opError("find_one", ferr)
	}
	return &m, nil
}

// UpdatePosters issues one ordered bulk write of updateOne($set posterURL)
// models, one per batch entry. Unmatched ids are not an error; they show up
// as MatchedCount below the batch size.
func (s *MongoStore) UpdatePosters(ctx context.Context, batch *models.PosterBatch) (summary *models.BulkWriteSummary, err error) {
	writes, err := buildPosterWrites(batch)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withOperationTimeout(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("bulk_write", s.cfg.Collection, time.Since(start), err) }()

	result, berr := s.coll.BulkWrite(ctx, writes)
	if berr != nil {
		return nil, s.opError("bulk_write", berr)
	}

	summary = summaryFromResult(result)
	metrics.RecordPosterUpdates(int64(len(writes)), summary.MatchedCount, summary.ModifiedCount)
	s.log.Debug().
		Int("requested", len(writes)).
		Int64("matched", summary.MatchedCount).
		Int64("modified", summary.ModifiedCount).
		Msg("Poster bulk write complete")
	return summary, nil
}

// Ping checks that the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withOperationTimeout(ctx)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return s.opError("ping", err)
	}
	return nil
}

// Disconnect closes all pooled connections.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	s.log.Info().Msg("Disconnected from MongoDB")
	return nil
}

// withOperationTimeout applies the configured operation timeout when ctx
// carries no deadline of its own.
func (s *MongoStore) withOperationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline || s.cfg.OperationTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

func (s *MongoStore) opError(op string, err error) error {
	return &OperationError{Op: op, Collection: s.cfg.Collection, Err: err}
}

// buildPosterWrites converts a validated batch into bulk write models.
func buildPosterWrites(batch *models.PosterBatch) ([]mongo.WriteModel, error) {
	if batch == nil || batch.Len() == 0 {
		return nil, errors.New("poster batch is empty")
	}

	writes := make([]mongo.WriteModel, 0, batch.Len())
	for _, entry := range batch.Entries {
		id, err := entry.ObjectID()
		if err != nil {
			return nil, fmt.Errorf("poster entry %s: %w", entry.Key, err)
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: id}}).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "posterURL", Value: entry.PosterURL}}}}))
	}
	return writes, nil
}

func summaryFromResult(result *mongo.BulkWriteResult) *models.BulkWriteSummary {
	if result == nil {
		return &models.BulkWriteSummary{}
	}
	return &models.BulkWriteSummary{
		Acknowledged:  result.Acknowledged,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		InsertedCount: result.InsertedCount,
		DeletedCount:  result.DeletedCount,
	}
}

// disconnectQuietly releases a client on an error path.
func disconnectQuietly(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx) // best-effort cleanup
}
