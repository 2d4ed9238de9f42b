// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie_test

import (
	"fmt"

	"github.com/nilgrip/seqtrie"
)

func ExampleSearch() {
	trie, err := seqtrie.NewTrie(1, 2)
	if err != nil {
		panic(err)
	}
	defer seqtrie.Destroy(trie, nil)

	for _, s := range []string{"AC", "TT"} {
		leaf, err := seqtrie.InsertString(trie, s)
		if err != nil {
			panic(err)
		}
		leaf.SetPayload(s)
	}

	// "AA" is one substitution away from "AC" and two away from "TT".
	hits := seqtrie.Search(trie, "AA", 1, nil, 0, 0)
	for i := 0; i < hits.Len(); i++ {
		fmt.Println(hits.At(i).Payload())
	}
	// Output:
	// AC
}
