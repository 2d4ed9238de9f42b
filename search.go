// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import (
	"fmt"

	"github.com/nilgrip/seqtrie/internal/alphabet"
)

// infinity seeds a minimum-distance accumulator before any real value
// has been folded into it. Any value larger than the largest tau this
// package accepts works; alphabet.M matches the sentinel the reference
// kernel used for the same purpose.
const infinity = int16(alphabet.M)

// Search finds every node at depth trie.Bottom() reachable from query
// within tau edits and appends them to hits. start and trail implement
// the mile-cache fast path: when consecutive calls share a
// start-symbol prefix of length start, the caller can pass the same
// start and a trail depth up to which frontiers should be cached, and
// the kernel reuses the frontier nodes already explored for depths
// 0..start instead of walking down from the root again. A first call
// on a trie should pass start=0, trail=0.
//
// hits may be nil, in which case a fresh NodeArray is allocated.
// Search returns hits so callers can chain calls that accumulate into
// the same array.
func Search(t *Trie, query string, tau int, hits *NodeArray, start, trail int) *NodeArray {
	if hits == nil {
		hits = NewNodeArray()
	}
	if tau > t.maxtau {
		t.err.set(ErrTauExceedsMaxTau)
		logFault(ErrTauExceedsMaxTau, fmt.Sprintf("search rejected: tau %d exceeds maxtau %d", tau, t.maxtau))
		return hits
	}
	length := len(query)
	if length > alphabet.LMax {
		t.err.set(ErrQueryTooLong)
		logFault(ErrQueryTooLong, fmt.Sprintf("search rejected: query length %d exceeds LMax", length))
		return hits
	}

	t.ensureMiles()

	// Translate into a fixed-width buffer so every depth the kernel can
	// possibly visit (up to the trie's bottom) has a defined symbol:
	// EOS beyond the query's own length, not whatever happened to be
	// in the buffer. Only the window the search can actually read
	// (bounded by how far back the tolerance reaches) is translated;
	// positions before it are never consulted.
	tq := make([]byte, alphabet.M)
	lo := start - t.maxtau
	if lo < 0 {
		lo = 0
	}
	for i := lo; i < length; i++ {
		tq[i+1] = alphabet.Altranslate(query[i])
	}
	for i := length + 1; i < len(tq); i++ {
		tq[i] = alphabet.EOS
	}

	for d := start + 1; d <= trail && d < len(t.miles); d++ {
		t.miles[d].Reset()
	}

	frontier := t.miles[start]
	for _, n := range frontier.Nodes() {
		recursiveSearch(t, n, tq, tau, start+1, trail, hits)
	}
	return hits
}

// recursiveSearch fills the DP row for the children of node (node sits
// at depth-1) and descends into each child in turn. The right arm of
// the row — the part that only depends on node's own cache and the
// packed ancestor path, not on which child is being visited — is
// computed once into a scratch row local to this call (seeded from
// t.common) and shared by every child; the left arm and the diagonal
// cell are computed per child since they depend on the child's edge
// symbol.
func recursiveSearch(t *Trie, node *Node, tq []byte, tau, depth, trail int, hits *NodeArray) {
	maxtau := t.maxtau
	maxa := depth - 1
	if maxa > tau {
		maxa = tau
	}

	var common [alphabet.MaxTau + 2]int16
	copy(common[:], t.common)
	path := node.path
	cmindist := infinity
	for a := maxa; a > 0; a-- {
		mismatch := int16(0)
		if pathSymbol(path, a) != tq[depth] {
			mismatch = 1
		}
		mmatch := *node.at(maxtau, a) + mismatch
		shift := min16(*node.at(maxtau, a-1), common[a+1]) + 1
		common[a] = min16(mmatch, shift)
		if common[a] < cmindist {
			cmindist = common[a]
		}
	}

	for sym := 0; sym < 6; sym++ {
		child := node.child[sym]
		if child == nil {
			continue
		}

		for a := 1; a <= maxa; a++ {
			*child.at(maxtau, a) = common[a]
		}

		mindist := cmindist
		for a := maxa; a > 0; a-- {
			mismatch := int16(0)
			if byte(sym) != tq[depth-a] {
				mismatch = 1
			}
			mmatch := *node.at(maxtau, -a) + mismatch
			shift := min16(*node.at(maxtau, 1-a), *child.at(maxtau, -a-1)) + 1
			*child.at(maxtau, -a) = min16(mmatch, shift)
			if v := *child.at(maxtau, -a); v < mindist {
				mindist = v
			}
		}

		centerMismatch := int16(0)
		if byte(sym) != tq[depth] {
			centerMismatch = 1
		}
		mmatch := *node.at(maxtau, 0) + centerMismatch
		shift := min16(*child.at(maxtau, -1), *child.at(maxtau, 1)) + 1
		*child.at(maxtau, 0) = min16(mmatch, shift)
		if v := *child.at(maxtau, 0); v < mindist {
			mindist = v
		}

		if mindist > int16(tau) {
			continue
		}

		if depth <= trail {
			t.miles[depth].push(child, &t.err)
		}

		if int(mindist) == tau && *child.at(maxtau, 0) == int16(tau) && depth > trail {
			dash(child, tq, depth+1, hits, &t.err)
			continue
		}

		if depth == t.bottom && *child.at(maxtau, 0) <= int16(tau) {
			hits.push(child, &t.err)
		}

		recursiveSearch(t, child, tq, tau, depth+1, trail, hits)
	}
}

// dash descends the exact-match path from node following the
// remaining translated query symbols starting at tq[from]. It is the
// shortcut taken once a branch's minimum distance and its diagonal
// cell have both reached tau: with no mismatch budget left, only a
// literal suffix match can still register a hit.
func dash(node *Node, tq []byte, from int, hits *NodeArray, err *errState) {
	idx := from
	for {
		c := tq[idx]
		idx++
		if c == alphabet.EOS {
			break
		}
		if c > alphabet.Ambiguous {
			return
		}
		child := node.child[c]
		if child == nil {
			return
		}
		node = child
	}
	if node.payload != nil {
		hits.push(node, err)
	}
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
