// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

// seqtrie-demo builds a bounded-edit-distance trie from whitespace
// separated, fixed-length DNA strings read from stdin and reports,
// for each query given as an argument, every indexed sequence within
// the requested tolerance.
package main

import (
	"bufio"
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/nilgrip/seqtrie"
)

var flags = []cli.Flag{
	cli.IntFlag{
		Name:  "tau",
		Value: 2,
		Usage: "edit-distance tolerance for queries",
	},
	cli.IntFlag{
		Name:  "maxtau",
		Value: 8,
		Usage: "construction-time ceiling on tau",
	},
	cli.IntFlag{
		Name:  "slack",
		Value: 0,
		Usage: "extra depth of mile-cache reuse between adjacent queries in a batch",
	},
}

func readSequences(r *os.File) ([]string, error) {
	var sequences []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		sequences = append(sequences, scanner.Text())
	}
	return sequences, scanner.Err()
}

func run(ctx *cli.Context) error {
	sequences, err := readSequences(os.Stdin)
	if err != nil {
		return err
	}
	if len(sequences) == 0 {
		return fmt.Errorf("seqtrie-demo: stdin contained no sequences")
	}

	bottom := len(sequences[0])
	trie, err := seqtrie.NewTrie(ctx.Int("maxtau"), bottom)
	if err != nil {
		return err
	}
	defer seqtrie.Destroy(trie, nil)

	for i, s := range sequences {
		leaf, err := seqtrie.InsertString(trie, s)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", s, err)
		}
		leaf.SetPayload(i)
	}

	queries := ctx.Args()
	if len(queries) == 0 {
		queries = sequences
	}
	results, err := seqtrie.SearchBatch(trie, queries, ctx.Int("tau"), ctx.Int("slack"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	for i, q := range queries {
		hits := results[i]
		fmt.Printf("%s: %d hit(s)\n", q, hits.Len())
		for j := 0; j < hits.Len(); j++ {
			idx := hits.At(j).Payload().(int)
			fmt.Printf("  %s\n", sequences[idx])
		}
	}
	return nil
}

func main() {
	app := cli.App{
		Name:      "seqtrie-demo",
		Usage:     "query a bounded-edit-distance trie over sequences read from stdin",
		ArgsUsage: "[query...]",
		Flags:     flags,
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
