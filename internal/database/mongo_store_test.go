// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
)

func TestBuildPosterWrites(t *testing.T) {
	t.Parallel()

	idA := bson.NewObjectID()
	idB := bson.NewObjectID()
	batch := &models.PosterBatch{Entries: []models.PosterEntry{
		{Key: "a", PosterUpdate: models.PosterUpdate{MongoID: idA.Hex(), PosterURL: "https://img.example.com/a.jpg"}},
		{Key: "b", PosterUpdate: models.PosterUpdate{MongoID: idB.Hex(), PosterURL: "https://img.example.com/b.jpg"}},
	}}

	writes, err := buildPosterWrites(batch)
	if err != nil {
		t.Fatalf("buildPosterWrites() error: %v", err)
	}
	if len(writes) != 2 {
		t.Fatalf("len(writes) = %d, want 2", len(writes))
	}

	first, ok := writes[0].(*mongo.UpdateOneModel)
	if !ok {
		t.Fatalf("writes[0] is %T, want *mongo.UpdateOneModel", writes[0])
	}
	if diff := cmp.Diff(bson.D{{Key: "_id", Value: idA}}, first.Filter); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
	wantUpdate := bson.D{{Key: "$set", Value: bson.D{{Key: "posterURL", Value: "https://img.example.com/a.jpg"}}}}
	if diff := cmp.Diff(wantUpdate, first.Update); diff != "" {
		t.Errorf("Update mismatch (-want +got):\n%s", diff)
	}
	if first.Upsert != nil && *first.Upsert {
		t.Error("poster updates must never upsert")
	}
}

func TestBuildPosterWrites_Rejects(t *testing.T) {
	t.Parallel()

	if _, err := buildPosterWrites(nil); err == nil {
		t.Error("expected error for nil batch")
	}
	if _, err := buildPosterWrites(&models.PosterBatch{}); err == nil {
		t.Error("expected error for empty batch")
	}

	bad := &models.PosterBatch{Entries: []models.PosterEntry{
		{Key: "x", PosterUpdate: models.PosterUpdate{MongoID: "not-hex", PosterURL: "https://img.example.com/x.jpg"}},
	}}
	if _, err := buildPosterWrites(bad); err == nil {
		t.Error("expected error for invalid ObjectID")
	}
}

func TestSummaryFromResult(t *testing.T) {
	t.Parallel()

	got := summaryFromResult(&mongo.BulkWriteResult{
		Acknowledged:  true,
		MatchedCount:  3,
		ModifiedCount: 2,
	})
	want := &models.BulkWriteSummary{Acknowledged: true, MatchedCount: 3, ModifiedCount: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(&models.BulkWriteSummary{}, summaryFromResult(nil)); diff != "" {
		t.Errorf("nil result mismatch (-want +got):\n%s", diff)
	}
}

func TestWithOperationTimeout(t *testing.T) {
	t.Parallel()

	s := &MongoStore{cfg: &config.MongoConfig{OperationTimeout: time.Minute}}

	ctx, cancel := s.withOperationTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected deadline to be applied")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > time.Minute {
		t.Errorf("unexpected remaining time %v", remaining)
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()
	parentDeadline, _ := parent.Deadline()

	child, childCancel := s.withOperationTimeout(parent)
	defer childCancel()
	if d, _ := child.Deadline(); !d.Equal(parentDeadline) {
		t.Error("existing deadline should be kept")
	}
}
