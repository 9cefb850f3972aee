// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Baseline constraints applied to every movie listing.
const (
	MaxStartYear = 2023
	MinNumVotes  = 50000

	// asciiOnlyPattern rejects titles containing non-ASCII characters.
	asciiOnlyPattern = `^[\x00-\x7F]*$`
)

// FilterBuilder constructs a MongoDB filter document clause by clause.
// Each clause is keyed by field name; adding a clause for an existing field
// replaces it.
//
// Example usage:
//
//	fb := query.NewFilterBuilder()
//	fb.AddBaseline()
//	fb.AddGenre("Drama")
//	filter := fb.Build()
//	// {startYear: {$lte: 2023}, primaryTitle: {$regex: ...},
//	//  originalTitle: {$regex: ...}, numVotes: {$gt: 50000},
//	//  genres: {$in: ["Drama"]}}
type FilterBuilder struct {
	clauses bson.M
}

// NewFilterBuilder creates a new FilterBuilder instance.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{clauses: bson.M{}}
}

// AddBaseline adds the clauses present in every listing:
//   - startYear <= 2023
//   - primaryTitle and originalTitle contain only ASCII characters
//   - numVotes > 50000
func (fb *FilterBuilder) AddBaseline() *FilterBuilder {
	fb.clauses[FieldStartYear] = bson.M{"$lte": MaxStartYear}
	fb.clauses[FieldPrimaryTitle] = bson.M{"$regex": bson.Regex{Pattern: asciiOnlyPattern}}
	fb.clauses[FieldOriginalTitle] = bson.M{"$regex": bson.Regex{Pattern: asciiOnlyPattern}}
	fb.clauses[FieldNumVotes] = bson.M{"$gt": MinNumVotes}
	return fb
}

// AddGenre restricts results to movies tagged with genre.
func (fb *FilterBuilder) AddGenre(genre string) *FilterBuilder {
	fb.clauses[FieldGenres] = bson.M{"$in": bson.A{genre}}
	return fb
}

// AddTextSearch adds a full-text phrase search. Plus signs in title are
// treated as word separators and the result is quoted so the text index
// matches it as a phrase. Empty titles are skipped.
func (fb *FilterBuilder) AddTextSearch(title string) *FilterBuilder {
	if title == "" {
		return fb
	}
	phrase := strings.Join(strings.Split(title, "+"), " ")
	fb.clauses["$text"] = bson.M{"$search": `"` + phrase + `"`}
	return fb
}

// Merge copies every clause of other into the builder.
func (fb *FilterBuilder) Merge(other bson.M) *FilterBuilder {
	for k, v := range other {
		fb.clauses[k] = v
	}
	return fb
}

// Build returns the filter document. An empty builder yields an empty,
// non-nil document that matches every movie.
func (fb *FilterBuilder) Build() bson.M {
	out := make(bson.M, len(fb.clauses))
	for k, v := range fb.clauses {
		out[k] = v
	}
	return out
}

// ConvertToFilter builds the baseline filter plus the optional genre and
// title clauses. Only plain string values are honored; object-valued or
// repeated keys are ignored.
func ConvertToFilter(params Params) bson.M {
	fb := NewFilterBuilder().AddBaseline()

	if genre, ok := params.String(ParamGenre); ok {
		fb.AddGenre(genre)
	}
	if title, ok := params.String(ParamTitle); ok {
		fb.AddTextSearch(title)
	}

	return fb.Build()
}

// Comparison operators accepted in bracket notation.
const (
	OpEq  = "eq"
	OpGt  = "gt"
	OpGte = "gte"
	OpLt  = "lt"
	OpLte = "lte"
	OpNe  = "ne"
)

// ConvertToFilterRule converts a single-operator object such as {"gt": "90"}
// into {"$gt": 90}.
//
// eq, gt, lt and ne operands are parsed as floating point numbers; gte and
// lte operands as integers, truncating any fraction. An empty operand maps
// to null. The object must carry exactly one known operator.
func ConvertToFilterRule(param string, criteria map[string]string) (bson.M, error) {
	if len(criteria) != 1 {
		ops := make([]string, 0, len(criteria))
		for op := range criteria {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		return nil, invalidField(param, strings.Join(ops, ","), "expected exactly one operator")
	}

	var op, raw string
	for k, v := range criteria {
		op, raw = k, v
	}

	var parse func(string) (interface{}, error)
	switch op {
	case OpEq, OpGt, OpLt, OpNe:
		parse = parseFloatOperand
	case OpGte, OpLte:
		parse = parseIntOperand
	default:
		return nil, invalidField(param, op, "unknown operator")
	}

	if raw == "" {
		return bson.M{"$" + op: nil}, nil
	}

	v, err := parse(raw)
	if err != nil {
		return nil, invalidField(fmt.Sprintf("%s[%s]", param, op), raw, err.Error())
	}
	return bson.M{"$" + op: v}, nil
}

func parseFloatOperand(raw string) (interface{}, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("must be a number")
	}
	return f, nil
}

func parseIntOperand(raw string) (interface{}, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) ||
		f > math.MaxInt64 || f < math.MinInt64 {
		return nil, fmt.Errorf("must be an integer")
	}
	return int64(math.Trunc(f)), nil
}

// FilterByRuntimeAndRating converts object-valued runtime and rating
// parameters into runtimeMinutes and averageRating clauses. Keys that are
// absent or not objects are omitted.
func FilterByRuntimeAndRating(params Params) (bson.M, error) {
	out := bson.M{}
	for _, param := range []string{ParamRuntime, ParamRating} {
		criteria, ok := params.Object(param)
		if !ok {
			continue
		}
		rule, err := ConvertToFilterRule(param, criteria)
		if err != nil {
			return nil, err
		}
		field, _ := ConvertToMovieKey(param)
		out[field] = rule
	}
	return out, nil
}
