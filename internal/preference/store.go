package preference

import "context"

// Repository defines the data access contract. Reads that find no row for
// the user return dberr.ErrNoRows; writes upsert the whole column.
type Repository interface {
	GetStarred(ctx context.Context, userID string) (string, error)
	ReplaceStarred(ctx context.Context, userID string, itemsJSON string) error

	GetVideoOrder(ctx context.Context, userID string) (string, error)
	ReplaceVideoOrder(ctx context.Context, userID string, orderJSON string) error
}
