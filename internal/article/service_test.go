package article_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/internal/article"
	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/dberr"
)

type mockRepo struct {
	meta    *article.Metadata
	metaErr error
	words   []article.Word
	wordErr error
}

func (m *mockRepo) GetMetadata(_ context.Context, _ int64) (*article.Metadata, error) {
	return m.meta, m.metaErr
}

func (m *mockRepo) ListWords(_ context.Context, _ int64) ([]article.Word, error) {
	return m.words, m.wordErr
}

func word(line, idx int) article.Word {
	return article.Word{ID: int64(line*100 + idx), LineIndex: line, WordIndex: idx}
}

func TestGetArticle_GroupsAndDeduplicates(t *testing.T) {
	url := "https://cdn.lemraya.app/v/1.mp4"
	repo := &mockRepo{
		meta: &article.Metadata{URL: &url},
		words: []article.Word{
			word(1, 1),
			word(1, 1), // duplicate word in the same line
			word(1, 2),
			word(2, 1),
		},
	}
	service := article.NewService(repo, slog.Default())

	payload, err := service.GetArticle(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, payload.Lines, 2)
	assert.Len(t, payload.Lines[1], 2, "duplicate word_index dropped")
	assert.Equal(t, 1, payload.Lines[1][0].WordIndex)
	assert.Equal(t, 2, payload.Lines[1][1].WordIndex)
	assert.Len(t, payload.Lines[2], 1)
	assert.Equal(t, &url, payload.URL)
}

func TestGetArticle_NoMetadataIsNotFound(t *testing.T) {
	repo := &mockRepo{metaErr: dberr.ErrNoRows}
	service := article.NewService(repo, slog.Default())

	_, err := service.GetArticle(context.Background(), 7)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "No metadata found for this article", ae.Message)
}

func TestGetArticle_EmptyTranscriptionIsNotFound(t *testing.T) {
	repo := &mockRepo{meta: &article.Metadata{}}
	service := article.NewService(repo, slog.Default())

	_, err := service.GetArticle(context.Background(), 42)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Contains(t, ae.Message, "article ID 42")
}

func TestGetArticle_QueryErrorPropagates(t *testing.T) {
	repo := &mockRepo{meta: &article.Metadata{}, wordErr: apperr.Internal(assert.AnError)}
	service := article.NewService(repo, slog.Default())

	_, err := service.GetArticle(context.Background(), 7)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}
