package dictionary

import (
	"context"
	"log/slog"

	"github.com/lemraya/lemraya-api/pkg/textutil"
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

// Search runs the filtered query and applies the redaction rule: any field
// whose trimmed value exactly equals the trimmed term is deleted from its
// row. Substring matches keep a row in the result set, but only an exact
// match deletes the field, so a row can lose fields yet is never dropped.
//
// Zero matches is a valid empty result.
func (service *Service) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	filter.Term = textutil.Clean(filter.Term)

	entries, err := service.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Term != "" {
		for i := range entries {
			redact(&entries[i], filter.Term)
		}
	}

	// The frontend expects an array even when nothing matched.
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// redact deletes every field of the entry that exactly equals the term.
func redact(entry *Entry, term string) {
	for _, field := range entry.textFields() {
		if *field != nil && textutil.EqualsTerm(**field, term) {
			*field = nil
		}
	}
}
