// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

// Package seqtrie implements a bounded-edit-distance trie for short,
// fixed-alphabet strings. It indexes DNA-like sequences (four bases
// plus an ambiguity code) and answers approximate membership queries
// under Levenshtein distance with a construction-time-bounded
// tolerance tau <= 8.
//
// The trie is single-threaded: a search mutates per-node DP caches and
// the root's mile cache, so searches on the same Trie must not run
// concurrently with each other or with construction. Independent
// Tries are fully independent.
package seqtrie

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nilgrip/seqtrie/internal/alphabet"
)

// LMax is the longest string the trie can index or query.
const LMax = alphabet.LMax

var configValidator = validator.New()

// trieConfig carries NewTrie's parameters through struct-tag
// validation before any node is allocated, the way the pack's request
// handlers validate inbound parameters before touching storage.
type trieConfig struct {
	MaxTau int `validate:"min=1,max=8"`
	Bottom int `validate:"min=1,max=127"`
}

// Trie is the root of a bounded-edit-distance trie. The zero value is
// not usable; create one with NewTrie.
type Trie struct {
	root   *Node
	maxtau int
	bottom int
	miles  []*NodeArray
	err    errState

	// common is the free-boundary ramp (common[k] = k) that seeds the
	// per-call scratch row for the right arm of the DP angle (see
	// search.go). Searches copy it and never write it, so it holds the
	// same values for the lifetime of the trie.
	common []int16
}

// NewTrie allocates a trie that accepts tolerances up to maxtau and
// expects indexed strings of length bottom. maxtau is capped at 8
// because the packed ancestor path addresses at most 8 symbols of
// context in a 32-bit word; bottom must fit within LMax.
func NewTrie(maxtau, bottom int) (*Trie, error) {
	cfg := trieConfig{MaxTau: maxtau, Bottom: bottom}
	if err := configValidator.Struct(cfg); err != nil {
		logFault(ErrNewTrieTauTooHigh, fmt.Sprintf("invalid trie parameters: %v", err))
		return nil, fmt.Errorf("seqtrie: invalid trie parameters: %w", err)
	}

	common := make([]int16, maxtau+2)
	for i := range common {
		common[i] = int16(i)
	}

	t := &Trie{
		root:   newNode(maxtau),
		maxtau: maxtau,
		bottom: bottom,
		miles:  make([]*NodeArray, alphabet.M),
		common: common,
	}
	return t, nil
}

// MaxTau returns the trie's construction-time tolerance ceiling.
func (t *Trie) MaxTau() int { return t.maxtau }

// Bottom returns the depth at which payload-bearing leaves live.
func (t *Trie) Bottom() int { return t.bottom }

// Root returns the trie's root node. Depth 0.
func (t *Trie) Root() *Node { return t.root }

// ensureMiles lazily allocates the mile-cache frontiers and seeds
// depth 0 with the root, exactly once per trie.
func (t *Trie) ensureMiles() {
	if t.miles[0] != nil {
		return
	}
	for i := range t.miles {
		t.miles[i] = NewNodeArray()
	}
	t.miles[0].push(t.root, &t.err)
}
