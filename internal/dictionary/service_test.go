package dictionary_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/internal/dictionary"
)

type mockRepo struct {
	entries    []dictionary.Entry
	err        error
	lastFilter dictionary.Filter
}

func (m *mockRepo) Search(_ context.Context, filter dictionary.Filter) ([]dictionary.Entry, error) {
	m.lastFilter = filter
	return m.entries, m.err
}

func ptr(s string) *string { return &s }

func newService(repo *mockRepo) *dictionary.Service {
	return dictionary.NewService(repo, slog.Default())
}

func TestSearch_RedactsExactMatchesOnly(t *testing.T) {
	repo := &mockRepo{
		entries: []dictionary.Entry{
			{
				ID:          1,
				Taatik:      ptr("abc"),    // exact match, deleted
				Translation: ptr("abcdef"), // substring only, kept
				Arabic:      ptr(" abc "),  // exact after trimming, deleted
			},
			{
				ID:          2,
				Taatik:      ptr("ABC"), // exact ignoring case, deleted
				Translation: ptr("xyz abc"),
			},
		},
	}
	service := newService(repo)

	articleID := int64(7)
	entries, err := service.Search(context.Background(), dictionary.Filter{
		ArticleID: &articleID,
		Term:      "abc",
	})
	require.NoError(t, err)
	require.Len(t, entries, 2, "redaction must never drop a row")

	assert.Nil(t, entries[0].Taatik)
	assert.Nil(t, entries[0].Arabic)
	require.NotNil(t, entries[0].Translation)
	assert.Equal(t, "abcdef", *entries[0].Translation)

	assert.Nil(t, entries[1].Taatik)
	require.NotNil(t, entries[1].Translation)
	assert.Equal(t, "xyz abc", *entries[1].Translation)
}

func TestSearch_TrimsTermBeforeQuerying(t *testing.T) {
	repo := &mockRepo{}
	service := newService(repo)

	_, err := service.Search(context.Background(), dictionary.Filter{Term: "  kataba  "})
	require.NoError(t, err)
	assert.Equal(t, "kataba", repo.lastFilter.Term)
}

func TestSearch_EmptyTermSkipsRedaction(t *testing.T) {
	repo := &mockRepo{
		entries: []dictionary.Entry{
			{ID: 1, Taatik: ptr("   ")}, // blank field must survive a blank term
		},
	}
	service := newService(repo)

	entries, err := service.Search(context.Background(), dictionary.Filter{Term: "   "})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Taatik)
}

func TestSearch_NoMatchesIsEmptySlice(t *testing.T) {
	repo := &mockRepo{entries: nil}
	service := newService(repo)

	entries, err := service.Search(context.Background(), dictionary.Filter{Term: "nothing"})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestSearch_QueryErrorPropagates(t *testing.T) {
	repo := &mockRepo{err: errors.New("connection refused")}
	service := newService(repo)

	_, err := service.Search(context.Background(), dictionary.Filter{})
	require.Error(t, err)
}
