package verbtable

import "context"

// Repository defines the data access contract.
type Repository interface {
	// ListBinyanim returns every row of the binyan list table.
	ListBinyanim(ctx context.Context) ([]BinyanRow, error)

	// ListConjugations returns conjugation rows ordered by guf ascending,
	// optionally restricted to one wazen.
	ListConjugations(ctx context.Context, wazenID *int64) ([]ConjugationRow, error)
}
