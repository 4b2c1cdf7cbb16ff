package verbtable

import (
	"context"
	"log/slog"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/pkg/slice"
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

// binyanColumns keys the pivoted payload by the hosted column names the
// frontend already knows, without the SQL quoting.
var binyanColumns = []tabular.Column[BinyanRow]{
	{Name: "binyan_list_shlemim", Value: func(r BinyanRow) *string { return r.Shlemim }},
	{Name: "binyan_list_kfulim", Value: func(r BinyanRow) *string { return r.Kfulim }},
	{Name: "binyan_list_gizrat_Pei_vav_yud", Value: func(r BinyanRow) *string { return r.PeiVavYud }},
	{Name: "binyan_list_gizrat_3ayn_vav_yud", Value: func(r BinyanRow) *string { return r.AynVavYud }},
	{Name: "binyan_list_gizrat_Lamed_vav_yud", Value: func(r BinyanRow) *string { return r.LamedVavYud }},
}

// BinyanLists pivots the binyan list rows into five independent arrays
// keyed by column name. Blank cells are skipped per column, so the arrays
// may have different lengths.
func (service *Service) BinyanLists(ctx context.Context) (map[string][]string, error) {
	rows, err := service.repo.ListBinyanim(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("No binyan records found")
	}

	return tabular.Pivot(rows, binyanColumns), nil
}

// Conjugations returns the conjugation table for an optional wazen filter,
// split into the header labels row and the data rows.
func (service *Service) Conjugations(ctx context.Context, wazenID *int64) (*ConjugationTable, error) {
	rows, err := service.repo.ListConjugations(ctx, wazenID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("No records found")
	}

	table := &ConjugationTable{
		Rows: slice.Filter(rows, func(r ConjugationRow) bool { return !r.isHeader() }),
	}
	if header, ok := slice.FirstWhere(rows, ConjugationRow.isHeader); ok {
		table.Header = &header
	}
	if table.Rows == nil {
		table.Rows = []ConjugationRow{}
	}

	return table, nil
}
