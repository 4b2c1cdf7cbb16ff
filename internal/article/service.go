package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/dberr"
	"github.com/lemraya/lemraya-api/pkg/tabular"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetArticle assembles the transcription payload for one article.
//
// The two queries run sequentially and fail fast: no metadata row is a 404,
// an article with metadata but no transcription rows is also a 404.
func (service *Service) GetArticle(ctx context.Context, articleID int64) (*Article, error) {
	meta, err := service.repo.GetMetadata(ctx, articleID)
	if err != nil {
		if errors.Is(err, dberr.ErrNoRows) {
			return nil, apperr.NotFound("No metadata found for this article")
		}
		return nil, err
	}

	words, err := service.repo.ListWords(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No transcription found for article ID %d", articleID))
	}

	// The upstream rows can contain the same word twice in a line; keep the
	// first occurrence only, preserving line order from the sort.
	groups := tabular.GroupByUnique(words,
		func(w Word) int { return w.LineIndex },
		func(w Word) int { return w.WordIndex },
	)

	lines := make(map[int][]Word, len(groups))
	for _, group := range groups {
		lines[group.Key] = group.Items
	}

	return &Article{
		Lines:     lines,
		StartTime: meta.VideoStart,
		EndTime:   meta.VideoEnd,
		URL:       meta.URL,
	}, nil
}
