// Copyright (c) 2026 Lemraya. All rights reserved.

package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/pkg/tabular"
)

type cellRow struct {
	a *string
	b *string
}

func ptr(s string) *string { return &s }

/*
TestPivot_IndependentColumnFiltering verifies that blank cells are skipped
per column, leaving the output vectors with independent lengths.
*/
func TestPivot_IndependentColumnFiltering(t *testing.T) {
	rows := []cellRow{
		{a: ptr("x"), b: ptr("p")},
		{a: ptr(""), b: ptr("q")},
		{a: nil, b: ptr("r")},
		{a: ptr("y"), b: ptr("s")},
	}

	cols := []tabular.Column[cellRow]{
		{Name: "A", Value: func(r cellRow) *string { return r.a }},
		{Name: "B", Value: func(r cellRow) *string { return r.b }},
	}

	out := tabular.Pivot(rows, cols)

	assert.Equal(t, []string{"x", "y"}, out["A"])
	assert.Equal(t, []string{"p", "q", "r", "s"}, out["B"])
}

/*
TestPivot_WhitespaceOnlyCellsSkipped verifies the trim rule and that empty
columns still appear as empty (non-nil) vectors.
*/
func TestPivot_WhitespaceOnlyCellsSkipped(t *testing.T) {
	rows := []cellRow{
		{a: ptr("  "), b: ptr("\t\n")},
		{a: ptr(" kept "), b: nil},
	}

	cols := []tabular.Column[cellRow]{
		{Name: "A", Value: func(r cellRow) *string { return r.a }},
		{Name: "B", Value: func(r cellRow) *string { return r.b }},
	}

	out := tabular.Pivot(rows, cols)

	// The cell is kept verbatim; trimming only decides inclusion.
	assert.Equal(t, []string{" kept "}, out["A"])
	require.NotNil(t, out["B"])
	assert.Empty(t, out["B"])
}

type wordRow struct {
	line int
	word int
	text string
}

/*
TestGroupByUnique_DedupWithinGroup verifies the first-occurrence-wins rule
and that group order follows first appearance.
*/
func TestGroupByUnique_DedupWithinGroup(t *testing.T) {
	rows := []wordRow{
		{line: 1, word: 1, text: "first"},
		{line: 1, word: 1, text: "duplicate"},
		{line: 1, word: 2, text: "second"},
		{line: 2, word: 1, text: "third"},
	}

	groups := tabular.GroupByUnique(rows,
		func(r wordRow) int { return r.line },
		func(r wordRow) int { return r.word },
	)

	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].Key)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "first", groups[0].Items[0].text, "first occurrence wins")
	assert.Equal(t, "second", groups[0].Items[1].text)

	assert.Equal(t, 2, groups[1].Key)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "third", groups[1].Items[0].text)
}

/*
TestGroupByUnique_PreservesInputOrder verifies that groups appear in
first-seen order even when keys are not sorted.
*/
func TestGroupByUnique_PreservesInputOrder(t *testing.T) {
	rows := []wordRow{
		{line: 5, word: 1},
		{line: 2, word: 1},
		{line: 5, word: 2},
	}

	groups := tabular.GroupByUnique(rows,
		func(r wordRow) int { return r.line },
		func(r wordRow) int { return r.word },
	)

	require.Len(t, groups, 2)
	assert.Equal(t, 5, groups[0].Key)
	assert.Equal(t, 2, groups[1].Key)
	assert.Len(t, groups[0].Items, 2)
}
