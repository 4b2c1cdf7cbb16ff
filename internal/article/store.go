package article

import "context"

// Repository defines the data access contract.
type Repository interface {
	// GetMetadata returns the article's video row, or dberr.ErrNoRows when
	// no row exists for the id.
	GetMetadata(ctx context.Context, articleID int64) (*Metadata, error)

	// ListWords returns all transcription rows for the article, sorted by
	// line_index then word_index ascending.
	ListWords(ctx context.Context, articleID int64) ([]Word, error)
}
