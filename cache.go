// cache.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package dawg

import "github.com/hashicorp/golang-lru/simplelru"

// DefaultCacheSize is the LRU capacity a QueryCache gets when none is
// given explicitly.
const DefaultCacheSize = 2048

// QueryCache memoises the materialised result of repeated queries
// (typically a pattern or combinator word enumeration) against the same
// dictionary generation. It is not safe for concurrent use — like the
// rest of this package, a QueryCache assumes a single mutator/reader and
// so carries no internal lock.
//
// Because a FlatGraph mutates in place, a QueryCache does not invalidate
// itself on edits; callers that edit the underlying graph after
// populating a cache must discard it and start a fresh one.
type QueryCache struct {
	lru *simplelru.LRU
}

// NewQueryCache returns an empty QueryCache with the given capacity. A
// non-positive size falls back to DefaultCacheSize.
func NewQueryCache(size int) *QueryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	lru, _ := simplelru.NewLRU(size, nil)
	return &QueryCache{lru: lru}
}

// Lookup returns the cached result for key if present; otherwise it
// calls fetch, caches the result, and returns it.
func (qc *QueryCache) Lookup(key string, fetch func(string) []string) []string {
	if words, ok := qc.lru.Get(key); ok {
		return words.([]string)
	}
	words := fetch(key)
	qc.lru.Add(key, words)
	return words
}

// Words enumerates d's accepted words, serving the result from qc when
// key has already been queried and caching a fresh enumeration
// otherwise.
func (qc *QueryCache) Words(key string, d Dawg) []string {
	return qc.Lookup(key, func(string) []string {
		var out []string
		for w := range Words(d) {
			out = append(out, w)
		}
		return out
	})
}
