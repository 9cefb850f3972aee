// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Options configures a Translator.
type Options struct {
	// DefaultSort is used when sort_by is absent. Defaults to SortTrending.
	DefaultSort DefaultSort
	// DefaultLimit is the page size when limit is absent. Defaults to 10.
	DefaultLimit int64
	// MaxLimit caps the requested page size. Zero or negative disables the cap.
	MaxLimit int64
}

// Criteria is the full set of store instructions for one listing request.
type Criteria struct {
	Filter     bson.M
	Sort       bson.D
	Pagination Pagination
}

// Translator converts Params into Criteria.
type Translator struct {
	opts Options
}

// NewTranslator creates a Translator, filling zero-valued options with
// defaults.
func NewTranslator(opts Options) *Translator {
	if !opts.DefaultSort.IsValid() {
		opts.DefaultSort = SortTrending
	}
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = DefaultPageSize
	}
	if opts.MaxLimit > 0 && opts.DefaultLimit > opts.MaxLimit {
		opts.DefaultLimit = opts.MaxLimit
	}
	return &Translator{opts: opts}
}

// SortingProperties returns the sort for sort_by, or the default sort when
// sort_by is absent or not a plain string.
func (t *Translator) SortingProperties(params Params) (bson.D, error) {
	expr, ok := params.String(ParamSortBy)
	if !ok {
		return t.opts.DefaultSort.Spec(), nil
	}
	return ParseSort(expr)
}

// PaginationProperties returns the page window for page and limit.
func (t *Translator) PaginationProperties(params Params) (Pagination, error) {
	return newPagination(params, t.opts.DefaultLimit, t.opts.MaxLimit)
}

// Translate builds the filter, sort and pagination for params.
func (t *Translator) Translate(params Params) (*Criteria, error) {
	ranges, err := FilterByRuntimeAndRating(params)
	if err != nil {
		return nil, err
	}

	sortSpec, err := t.SortingProperties(params)
	if err != nil {
		return nil, err
	}

	page, err := t.PaginationProperties(params)
	if err != nil {
		return nil, err
	}

	filter := NewFilterBuilder().
		Merge(ConvertToFilter(params)).
		Merge(ranges).
		Build()

	return &Criteria{
		Filter:     filter,
		Sort:       sortSpec,
		Pagination: page,
	}, nil
}
