// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import "testing"

func TestDestroyCallsPayloadDestructorOncePerLeaf(t *testing.T) {
	trie, err := NewTrie(1, 2)
	if err != nil {
		t.Fatalf("NewTrie: %v", err)
	}
	for _, s := range []string{"AA", "AC"} {
		leaf, err := InsertString(trie, s)
		if err != nil {
			t.Fatalf("InsertString(%q): %v", s, err)
		}
		leaf.SetPayload(s)
	}

	var freed []string
	Destroy(trie, func(v any) { freed = append(freed, v.(string)) })

	if len(freed) != 2 {
		t.Fatalf("payloadDestructor called %d times, want 2", len(freed))
	}
	if trie.root != nil {
		t.Fatal("Destroy should clear the root")
	}
}

func TestDestroyWithNilDestructorIsSafe(t *testing.T) {
	trie, err := NewTrie(1, 1)
	if err != nil {
		t.Fatalf("NewTrie: %v", err)
	}
	if _, err := InsertString(trie, "A"); err != nil {
		t.Fatalf("InsertString: %v", err)
	}
	Destroy(trie, nil)
	Destroy(trie, nil) // second call is a no-op, must not panic
}
