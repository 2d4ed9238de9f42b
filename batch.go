// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import (
	"fmt"
	"sort"

	multierror "github.com/hashicorp/go-multierror"
)

// SearchBatch runs Search once per query, ordering the calls so
// lexicographically adjacent queries run back to back and share mile
// cache frontiers instead of each walking down from the root. slack
// controls how many symbols past the shared prefix get cached for the
// next query in sorted order to reuse; 0 disables the cache reuse
// between distinct queries and falls back to a plain per-query search.
//
// Results are returned in the same order as queries. Individual
// per-query failures (tau too large, query too long) are aggregated
// into the returned error rather than aborting the batch; the
// NodeArray for a failed query is still present, just empty.
func SearchBatch(t *Trie, queries []string, tau, slack int) ([]*NodeArray, error) {
	n := len(queries)
	results := make([]*NodeArray, n)
	if n == 0 {
		return results, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return queries[order[i]] < queries[order[j]] })

	var errs *multierror.Error
	prev := ""
	prevTrail := 0 // deepest mile frontier the previous query rebuilt
	for _, idx := range order {
		q := queries[idx]
		start := commonPrefixLen(prev, q)
		if start > prevTrail {
			start = prevTrail
		}
		if start >= t.bottom {
			start = t.bottom - 1
		}
		trail := start + slack
		if trail > t.bottom {
			trail = t.bottom
		}

		hits := NewNodeArray()
		results[idx] = Search(t, q, tau, hits, start, trail)
		if code := CheckTrieErrorAndReset(t); code != 0 {
			errs = multierror.Append(errs, fmt.Errorf("seqtrie: query %q failed with error code %d", q, code))
		}
		prev = q
		prevTrail = trail
	}
	return results, errs.ErrorOrNil()
}

func commonPrefixLen(a, b string) int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	i := 0
	for ; i < max; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}
