// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"math"
	"strconv"
	"strings"
)

// Pagination defaults.
const (
	DefaultPage     int64 = 1
	DefaultPageSize int64 = 10
	MaxPageSize     int64 = 100
)

// Pagination is a 1-based page window.
type Pagination struct {
	Page  int64
	Limit int64
}

// Skip returns the number of documents preceding the page.
func (p Pagination) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// PreviousPage returns nil on the first page.
func (p Pagination) PreviousPage() *int64 {
	if p.Page <= 1 {
		return nil
	}
	prev := p.Page - 1
	return &prev
}

// NextPage returns the following page number. Emptiness of that page is not
// checked.
func (p Pagination) NextPage() int64 {
	return p.Page + 1
}

// parsePositive parses a base-10 integer >= 1.
func parsePositive(param, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, invalidField(param, raw, "must be an integer")
	}
	if n < 1 {
		return 0, invalidField(param, raw, "must be at least 1")
	}
	return n, nil
}

// newPagination builds a window from optional page/limit strings.
func newPagination(params Params, defaultLimit, maxLimit int64) (Pagination, error) {
	p := Pagination{Page: DefaultPage, Limit: defaultLimit}

	if raw, ok := params.String(ParamPage); ok {
		n, err := parsePositive(ParamPage, raw)
		if err != nil {
			return Pagination{}, err
		}
		p.Page = n
	}

	if raw, ok := params.String(ParamLimit); ok {
		n, err := parsePositive(ParamLimit, raw)
		if err != nil {
			return Pagination{}, err
		}
		p.Limit = n
	}

	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	// The next page number must stay representable as well as the skip.
	if p.Page == math.MaxInt64 || p.Page-1 > math.MaxInt64/p.Limit {
		return Pagination{}, invalidField(ParamPage, strconv.FormatInt(p.Page, 10), "out of range")
	}

	return p, nil
}
