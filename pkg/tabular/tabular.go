// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package tabular provides generic reshaping utilities for row-oriented data
fetched from the hosted database.

Two transforms recur across the content endpoints and are factored here:

  - Pivot: rows x fixed columns -> independent column vectors, skipping blank
    cells per column (the binyan lists).
  - GroupByUnique: group rows by a key while enforcing a uniqueness
    constraint inside each group (transcription lines deduplicated by word
    index).

Both preserve first-seen order; neither ever reorders its input.
*/
package tabular

import "strings"

// # Column Pivoting

// Column names one output vector of a pivot and selects its cell from a row.
type Column[T any] struct {
	// Name keys the output map.
	Name string
	// Value extracts the cell; nil cells are skipped.
	Value func(T) *string
}

// Pivot transposes rows into per-column vectors.
//
// Each column is scanned independently: a cell joins its vector only when it
// is non-nil and not empty or whitespace-only after trimming, so the output
// vectors may have different lengths. Every column named in cols appears in
// the result, even when empty.
func Pivot[T any](rows []T, cols []Column[T]) map[string][]string {
	out := make(map[string][]string, len(cols))

	for _, col := range cols {
		// Explicit empty slice so the column serializes as [] rather than null.
		out[col.Name] = []string{}
	}

	for _, row := range rows {
		for _, col := range cols {
			cell := col.Value(row)
			if cell == nil || strings.TrimSpace(*cell) == "" {
				continue
			}
			out[col.Name] = append(out[col.Name], *cell)
		}
	}

	return out
}

// # Grouping

// Group is one key's members, in first-seen order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupByUnique groups rows by groupKey, preserving the order in which group
// keys first appear and the order of rows inside each group.
//
// Within a group, uniqueKey enforces a uniqueness constraint: a row whose
// unique key already exists in its group is dropped, first occurrence wins.
func GroupByUnique[T any, K comparable, U comparable](rows []T, groupKey func(T) K, uniqueKey func(T) U) []Group[K, T] {
	var groups []Group[K, T]
	index := make(map[K]int)
	seen := make(map[K]map[U]struct{})

	for _, row := range rows {
		gk := groupKey(row)

		at, ok := index[gk]
		if !ok {
			at = len(groups)
			index[gk] = at
			groups = append(groups, Group[K, T]{Key: gk})
			seen[gk] = make(map[U]struct{})
		}

		uk := uniqueKey(row)
		if _, dup := seen[gk][uk]; dup {
			continue
		}
		seen[gk][uk] = struct{}{}

		groups[at].Items = append(groups[at].Items, row)
	}

	return groups
}
