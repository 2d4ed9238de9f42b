// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertStringRoundTrip(t *testing.T) {
	trie, err := NewTrie(2, 4)
	require.NoError(t, err)

	leaf, err := InsertString(trie, "ACGT")
	require.NoError(t, err)
	require.NotNil(t, leaf)

	node := trie.Root()
	for _, sym := range []byte{0, 1, 2, 3} {
		node = node.child[sym]
		require.NotNil(t, node, "expected a child for symbol %d", sym)
	}
	require.Same(t, leaf, node)
}

func TestInsertStringDuplicateReturnsExistingLeaf(t *testing.T) {
	trie, err := NewTrie(2, 2)
	require.NoError(t, err)

	first, err := InsertString(trie, "AC")
	require.NoError(t, err)
	first.SetPayload(1)

	second, err := InsertString(trie, "AC")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, second.Payload())
}

func TestInsertStringRejectsEmpty(t *testing.T) {
	trie, err := NewTrie(2, 4)
	require.NoError(t, err)

	_, err = InsertString(trie, "")
	require.Error(t, err)
	require.Equal(t, ErrInsertStringTooLong, CheckTrieErrorAndReset(trie))
}

func TestInsertStringRejectsTooLong(t *testing.T) {
	trie, err := NewTrie(1, 4)
	require.NoError(t, err)

	_, err = InsertString(trie, strings.Repeat("A", LMax+1))
	require.Error(t, err)
	require.Equal(t, ErrInsertStringTooLong, CheckTrieErrorAndReset(trie))
}

func TestInsertStringsAggregatesFailures(t *testing.T) {
	trie, err := NewTrie(1, 4)
	require.NoError(t, err)

	err = InsertStrings(trie, []string{"ACGT", "", "AAAA", strings.Repeat("C", LMax+1)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}

func TestNewTrieRejectsInvalidParameters(t *testing.T) {
	if _, err := NewTrie(9, 4); err == nil {
		t.Error("NewTrie(9, ...) should reject maxtau above 8")
	}
	if _, err := NewTrie(0, 4); err == nil {
		t.Error("NewTrie(0, ...) should reject maxtau below 1")
	}
	if _, err := NewTrie(2, 0); err == nil {
		t.Error("NewTrie(..., 0) should reject bottom below 1")
	}
}
