// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package query translates movie list query-string parameters into MongoDB
// criteria for the database package.
//
// A request's query string is parsed once into Params, which keeps the
// distinction between plain string values (genre=Drama) and bracketed objects
// (runtime[gt]=90). From Params the package derives three independent
// artifacts:
//
//   - a filter predicate (bson.M), always carrying the baseline clauses
//   - a sort specification (bson.D, ordered)
//   - a pagination window (page, limit, skip)
//
// # Overview
//
// The Translator bundles the configurable parts (default sort, page sizes):
//
//	t := query.NewTranslator(query.Options{DefaultSort: query.SortTrending})
//	params := query.ParseParams(r.URL.Query())
//	criteria, err := t.Translate(params)
//	if err != nil {
//	    // errors.Is(err, query.ErrInvalidField) -> HTTP 400
//	}
//	cursor, err := coll.Find(ctx, criteria.Filter, options.Find().
//	    SetSort(criteria.Sort).
//	    SetLimit(criteria.Pagination.Limit).
//	    SetSkip(criteria.Pagination.Skip()))
//
// The FilterBuilder provides a fluent interface for the filter predicate:
//
//	fb := query.NewFilterBuilder().AddBaseline()
//	fb.AddGenre("Drama")
//	fb.AddTextSearch("The+Matrix")
//	filter := fb.Build()
//	// {startYear: {$lte: 2023}, ..., genres: {$in: ["Drama"]},
//	//  $text: {$search: "\"The Matrix\""}}
//
// # Field aliases
//
// Query keys are short aliases of the stored field names. The alias set is
// closed; ConvertToMovieKey reports false for anything else:
//
//   - title   -> primaryTitle
//   - rating  -> averageRating
//   - year    -> startYear
//   - runtime -> runtimeMinutes
//
// # Thread Safety
//
// Translator is immutable after construction and safe for concurrent use.
// FilterBuilder instances are not; create one per request.
package query
