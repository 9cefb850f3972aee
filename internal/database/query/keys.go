// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

// Canonical movie field names as stored in the collection.
const (
	FieldPrimaryTitle   = "primaryTitle"
	FieldOriginalTitle  = "originalTitle"
	FieldAverageRating  = "averageRating"
	FieldStartYear      = "startYear"
	FieldRuntimeMinutes = "runtimeMinutes"
	FieldNumVotes       = "numVotes"
	FieldGenres         = "genres"
)

// Query-string keys understood by the translator.
const (
	ParamGenre   = "genre"
	ParamTitle   = "title"
	ParamSortBy  = "sort_by"
	ParamPage    = "page"
	ParamLimit   = "limit"
	ParamRuntime = "runtime"
	ParamRating  = "rating"
)

var movieKeys = map[string]string{
	"title":   FieldPrimaryTitle,
	"rating":  FieldAverageRating,
	"year":    FieldStartYear,
	"runtime": FieldRuntimeMinutes,
}

// ConvertToMovieKey maps a query alias to its stored field name.
// The lookup is case-sensitive; ok is false when no mapping exists.
func ConvertToMovieKey(key string) (field string, ok bool) {
	field, ok = movieKeys[key]
	return field, ok
}
