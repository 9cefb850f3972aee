// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"net/url"
	"sort"
	"strings"
)

// Params is a parsed query string where each key holds either a plain string
// or a one-level object of string values (bracket notation: runtime[gt]=90).
//
// Keys that appear more than once without brackets, or that mix both shapes
// (runtime=90&runtime[gt]=90), hold neither and are ignored by the translator.
type Params struct {
	strings map[string]string
	objects map[string]map[string]string
	invalid map[string]struct{}
}

// NewParams returns an empty Params.
func NewParams() Params {
	return Params{
		strings: map[string]string{},
		objects: map[string]map[string]string{},
		invalid: map[string]struct{}{},
	}
}

// ParseParams builds Params from decoded URL values.
func ParseParams(values url.Values) Params {
	p := NewParams()
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}

		name, sub, bracketed := splitBracketKey(key)
		if !bracketed {
			if len(vals) > 1 {
				p.markInvalid(key)
				continue
			}
			p.Set(key, vals[0])
			continue
		}

		// name[] is array notation
		if sub == "" {
			p.markInvalid(name)
			continue
		}
		p.SetField(name, sub, vals[0])
	}
	return p
}

// ParseRawQuery parses a raw query string such as "sort_by=asc(year)&page=2".
func ParseRawQuery(raw string) (Params, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return NewParams(), err
	}
	return ParseParams(values), nil
}

// Set stores a plain string value for key.
func (p Params) Set(key, value string) Params {
	if p.isInvalid(key) {
		return p
	}
	if _, ok := p.objects[key]; ok {
		p.markInvalid(key)
		return p
	}
	p.strings[key] = value
	return p
}

// SetField stores value under key[field].
func (p Params) SetField(key, field, value string) Params {
	if p.isInvalid(key) {
		return p
	}
	if _, ok := p.strings[key]; ok {
		p.markInvalid(key)
		return p
	}
	obj, ok := p.objects[key]
	if !ok {
		obj = map[string]string{}
		p.objects[key] = obj
	}
	obj[field] = value
	return p
}

// String returns the value for key when it holds a plain string.
func (p Params) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

// Object returns a copy of the object stored under key.
func (p Params) Object(key string) (map[string]string, bool) {
	obj, ok := p.objects[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out, true
}

// Keys returns every key seen, in any shape, sorted.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p.strings)+len(p.objects)+len(p.invalid))
	for k := range p.strings {
		keys = append(keys, k)
	}
	for k := range p.objects {
		keys = append(keys, k)
	}
	for k := range p.invalid {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (p Params) Len() int {
	return len(p.strings) + len(p.objects) + len(p.invalid)
}

func (p Params) isInvalid(key string) bool {
	_, ok := p.invalid[key]
	return ok
}

func (p Params) markInvalid(key string) {
	delete(p.strings, key)
	delete(p.objects, key)
	p.invalid[key] = struct{}{}
}

// splitBracketKey splits "runtime[gt]" into ("runtime", "gt", true).
// Nested brackets beyond the first level are kept verbatim in sub.
func splitBracketKey(key string) (name, sub string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}
