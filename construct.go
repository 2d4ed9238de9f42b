// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/nilgrip/seqtrie/internal/alphabet"
)

// InsertString adds s to the trie by symbol translation, allocating
// nodes lazily along the existing path and creating the remainder
// fresh. It returns the leaf node so the caller can attach a payload
// with Node.SetPayload.
//
// The empty string is rejected: inserting it would land on the root,
// which carries the trie's own bookkeeping rather than a leaf
// payload.
func InsertString(t *Trie, s string) (*Node, error) {
	if len(s) == 0 {
		t.err.set(ErrInsertStringTooLong)
		logFault(ErrInsertStringTooLong, "insert rejected: empty string")
		return nil, fmt.Errorf("seqtrie: cannot insert empty string")
	}
	if len(s) > alphabet.LMax {
		t.err.set(ErrInsertStringTooLong)
		logFault(ErrInsertStringTooLong, "insert rejected: string longer than LMax")
		return nil, fmt.Errorf("seqtrie: string of length %d exceeds LMax=%d", len(s), alphabet.LMax)
	}

	node := t.root
	i := 0
	for ; i < len(s); i++ {
		c := alphabet.Translate(s[i])
		child := node.child[c]
		if child == nil {
			node = t.insertChild(node, c)
			i++
			break
		}
		node = child
	}
	for ; i < len(s); i++ {
		if node == nil {
			t.err.set(ErrInsertPastNilNode)
			logFault(ErrInsertPastNilNode, "insert walked past a nil node mid-string")
			return nil, fmt.Errorf("seqtrie: internal error inserting %q", s)
		}
		c := alphabet.Translate(s[i])
		node = t.insertChild(node, c)
	}
	return node, nil
}

// insertChild appends a freshly allocated child at symbol position
// under parent, with no check that the slot is empty: callers only
// reach here after confirming the slot was nil.
func (t *Trie) insertChild(parent *Node, position byte) *Node {
	child := newNode(t.maxtau)
	child.path = (parent.path << 4) | uint32(position)
	parent.child[position] = child
	return child
}

// InsertStrings inserts every string in ss, continuing past individual
// failures and returning them aggregated in a single error so a
// caller can report every bad record from one batch instead of
// stopping at the first.
func InsertStrings(t *Trie, ss []string) error {
	var errs *multierror.Error
	for _, s := range ss {
		if _, err := InsertString(t, s); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
