// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultSort names the ordering applied when sort_by is absent.
type DefaultSort string

const (
	// SortTrending orders newest first, then by vote count.
	SortTrending DefaultSort = "trending"
	// SortTopRated orders by average rating.
	SortTopRated DefaultSort = "top_rated"
)

// ValidDefaultSorts lists accepted DefaultSort values.
var ValidDefaultSorts = []DefaultSort{SortTrending, SortTopRated}

// IsValid reports whether s is a known default sort.
func (s DefaultSort) IsValid() bool {
	for _, v := range ValidDefaultSorts {
		if s == v {
			return true
		}
	}
	return false
}

// Spec returns a fresh copy of the sort document for s.
// Unknown values fall back to trending.
func (s DefaultSort) Spec() bson.D {
	if s == SortTopRated {
		return bson.D{{Key: FieldAverageRating, Value: -1}}
	}
	return bson.D{
		{Key: FieldStartYear, Value: -1},
		{Key: FieldNumVotes, Value: -1},
	}
}

// sortPattern matches "direction(field)" with no nested parentheses.
var sortPattern = regexp.MustCompile(`^([^()]*)\(([^()]*)\)$`)

var sortDirections = map[string]int{
	"asc":  1,
	"desc": -1,
}

// ParseSort converts a "direction(alias)" expression into a single-key sort.
func ParseSort(expr string) (bson.D, error) {
	m := sortPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, invalidField(ParamSortBy, expr, "expected direction(field)")
	}

	dir, ok := sortDirections[m[1]]
	if !ok {
		return nil, invalidField(ParamSortBy, expr, fmt.Sprintf("unknown direction %q", m[1]))
	}

	field, ok := ConvertToMovieKey(m[2])
	if !ok {
		return nil, invalidField(ParamSortBy, expr, fmt.Sprintf("unknown field %q", m[2]))
	}

	return bson.D{{Key: field, Value: dir}}, nil
}
