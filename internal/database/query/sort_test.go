// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestConvertToMovieKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"title", "primaryTitle", true},
		{"rating", "averageRating", true},
		{"year", "startYear", true},
		{"runtime", "runtimeMinutes", true},
		{"genre", "", false},
		{"Title", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, ok := ConvertToMovieKey(tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ConvertToMovieKey(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultSort_Spec(t *testing.T) {
	t.Parallel()

	trending := bson.D{{Key: "startYear", Value: -1}, {Key: "numVotes", Value: -1}}
	topRated := bson.D{{Key: "averageRating", Value: -1}}

	if diff := cmp.Diff(trending, SortTrending.Spec()); diff != "" {
		t.Errorf("trending mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(topRated, SortTopRated.Spec()); diff != "" {
		t.Errorf("top_rated mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(trending, DefaultSort("unknown").Spec()); diff != "" {
		t.Errorf("unknown should fall back to trending (-want +got):\n%s", diff)
	}
	if DefaultSort("unknown").IsValid() {
		t.Error("Expected unknown default sort to be invalid")
	}
}

func TestSortingProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		defaultSort DefaultSort
		params      Params
		want        bson.D
		wantErr     bool
	}{
		{
			name:   "absent uses trending default",
			params: NewParams(),
			want:   bson.D{{Key: "startYear", Value: -1}, {Key: "numVotes", Value: -1}},
		},
		{
			name:        "absent uses configured top rated",
			defaultSort: SortTopRated,
			params:      NewParams(),
			want:        bson.D{{Key: "averageRating", Value: -1}},
		},
		{
			name:   "desc rating",
			params: NewParams().Set("sort_by", "desc(rating)"),
			want:   bson.D{{Key: "averageRating", Value: -1}},
		},
		{
			name:   "asc runtime",
			params: NewParams().Set("sort_by", "asc(runtime)"),
			want:   bson.D{{Key: "runtimeMinutes", Value: 1}},
		},
		{
			name:   "asc year",
			params: NewParams().Set("sort_by", "asc(year)"),
			want:   bson.D{{Key: "startYear", Value: 1}},
		},
		{
			name:   "object sort_by uses default",
			params: NewParams().SetField("sort_by", "desc", "rating"),
			want:   bson.D{{Key: "startYear", Value: -1}, {Key: "numVotes", Value: -1}},
		},
		{name: "unknown direction", params: NewParams().Set("sort_by", "foo(runtime)"), wantErr: true},
		{name: "unknown field", params: NewParams().Set("sort_by", "asc(bogus)"), wantErr: true},
		{name: "missing parens", params: NewParams().Set("sort_by", "asc"), wantErr: true},
		{name: "trailing text", params: NewParams().Set("sort_by", "asc(year)x"), wantErr: true},
		{name: "nested parens", params: NewParams().Set("sort_by", "asc((year))"), wantErr: true},
		{name: "uppercase direction", params: NewParams().Set("sort_by", "DESC(rating)"), wantErr: true},
		{name: "empty", params: NewParams().Set("sort_by", ""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := NewTranslator(Options{DefaultSort: tt.defaultSort})
			got, err := tr.SortingProperties(tt.params)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidField) {
					t.Fatalf("Expected ErrInvalidField, got %v (sort %v)", err, got)
				}
				var fe *FieldError
				if !errors.As(err, &fe) || fe.Param != "sort_by" {
					t.Errorf("Expected FieldError for sort_by, got %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SortingProperties() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortingProperties_DefaultNotShared(t *testing.T) {
	tr := NewTranslator(Options{})
	first, err := tr.SortingProperties(NewParams())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	first[0].Value = 1

	second, _ := tr.SortingProperties(NewParams())
	if second[0].Value != -1 {
		t.Errorf("Default sort was mutated through a previous result: %v", second)
	}
}
