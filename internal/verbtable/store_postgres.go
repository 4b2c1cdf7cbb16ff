package verbtable

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemraya/lemraya-api/internal/platform/database/schema"
	"github.com/lemraya/lemraya-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBinyanim(ctx context.Context) ([]BinyanRow, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s;
	`,
		schema.BinyanList.Shlemim,
		schema.BinyanList.Kfulim,
		schema.BinyanList.PeiVavYud,
		schema.BinyanList.AynVavYud,
		schema.BinyanList.LamedVavYud,
		schema.BinyanList.Table,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_binyanim")
	}
	defer rows.Close()

	var list []BinyanRow
	for rows.Next() {
		r := BinyanRow{}
		if err := rows.Scan(&r.Shlemim, &r.Kfulim, &r.PeiVavYud, &r.AynVavYud, &r.LamedVavYud); err != nil {
			return nil, dberr.Wrap(err, "scan_binyan_row")
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_binyanim")
	}

	return list, nil
}

func (repository *PostgresRepository) ListConjugations(ctx context.Context, wazenID *int64) ([]ConjugationRow, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.Awzan.Masdar,
		schema.Awzan.PassiveParticiple,
		schema.Awzan.ActiveParticiple,
		schema.Awzan.Imperative1,
		schema.Awzan.Imperative2,
		schema.Awzan.Imperative3,
		schema.Awzan.PresentFutureA,
		schema.Awzan.PresentFutureB,
		schema.Awzan.PresentFutureC,
		schema.Awzan.PastA,
		schema.Awzan.PastB,
		schema.Awzan.Guf,
		schema.Awzan.WazenID,
		schema.Awzan.Table,
	)

	args := []any{}
	if wazenID != nil {
		query += fmt.Sprintf("WHERE %s = $1\n", schema.Awzan.WazenID)
		args = append(args, *wazenID)
	}
	query += fmt.Sprintf("ORDER BY %s ASC;", schema.Awzan.Guf)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_conjugations")
	}
	defer rows.Close()

	var list []ConjugationRow
	for rows.Next() {
		r := ConjugationRow{}
		if err := rows.Scan(
			&r.Masdar, &r.PassiveParticiple, &r.ActiveParticiple,
			&r.Imperative1, &r.Imperative2, &r.Imperative3,
			&r.PresentFutureA, &r.PresentFutureB, &r.PresentFutureC,
			&r.PastA, &r.PastB, &r.Guf, &r.WazenID,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_conjugation_row")
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_conjugations")
	}

	return list, nil
}
