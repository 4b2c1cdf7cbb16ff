package info

import (
	"context"
	"log/slog"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/pkg/slice"
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

// LetterMap merges the three transliteration tables into one payload. The
// queries run sequentially and fail fast: any error aborts the merge with a
// message naming the sub-query that broke.
func (service *Service) LetterMap(ctx context.Context) (*LetterMap, error) {
	mappings, err := service.repo.ListLetterMap(ctx)
	if err != nil {
		return nil, apperr.InternalMessage("Error fetching arabic letter map", err)
	}

	subRows, err := service.repo.ListLetterMapSubRows(ctx)
	if err != nil {
		return nil, apperr.InternalMessage("Error fetching arabic letter map sub rows", err)
	}

	headerRows, err := service.repo.ListHeaders(ctx)
	if err != nil {
		return nil, apperr.InternalMessage("Error fetching table headers", err)
	}

	headerRows = slice.Filter(headerRows, func(h HeaderRow) bool { return h.SubTitle != nil })
	payload := &LetterMap{
		Headers:                slice.Map(headerRows, func(h HeaderRow) string { return *h.SubTitle }),
		ArabicLetterMap:        mappings,
		ArabicLetterMapSubRows: subRows,
	}

	// The frontend iterates all three collections unconditionally.
	if payload.Headers == nil {
		payload.Headers = []string{}
	}
	if payload.ArabicLetterMap == nil {
		payload.ArabicLetterMap = []LetterMapping{}
	}
	if payload.ArabicLetterMapSubRows == nil {
		payload.ArabicLetterMapSubRows = []LetterMapping{}
	}

	return payload, nil
}

// VowelMethods returns the vowel-marking reference rows in id order.
func (service *Service) VowelMethods(ctx context.Context) ([]VowelMethod, error) {
	methods, err := service.repo.ListVowelMethods(ctx)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, apperr.NotFound("No vowel records found")
	}

	return methods, nil
}
