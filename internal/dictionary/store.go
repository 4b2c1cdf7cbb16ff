package dictionary

import "context"

// Repository defines the data access contract.
type Repository interface {
	// Search returns entries matching the filter, ordered by id ascending.
	// Zero matches is a valid empty result, not an error.
	Search(ctx context.Context, filter Filter) ([]Entry, error)
}
