package dictionary

import (
	"context"

	sq "github.com/Masterminds/squirrel"
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

// Search builds the filtered query dynamically: the term produces one ILIKE
// predicate per text column, OR'd together, on top of the id scoping.
func (repository *PostgresRepository) Search(ctx context.Context, filter Filter) ([]Entry, error) {
	builder := sq.Select(
		schema.Dictionary.ID,
		schema.Dictionary.Taatik,
		schema.Dictionary.Arabic,
		schema.Dictionary.ArabicTashkil,
		schema.Dictionary.Translation,
		schema.Dictionary.Tense,
		schema.Dictionary.Guf,
		schema.Dictionary.Wazen,
		schema.Dictionary.Shoresh,
		schema.Dictionary.Extras,
		schema.Dictionary.Gizra,
	).
		From(schema.Dictionary.Table).
		PlaceholderFormat(sq.Dollar).
		OrderBy(schema.Dictionary.ID + " ASC")

	if filter.EntryID != nil {
		builder = builder.Where(sq.Eq{schema.Dictionary.ID: *filter.EntryID})
	}
	if filter.ArticleID != nil {
		builder = builder.Where(sq.Eq{schema.Dictionary.ArticleID: *filter.ArticleID})
	}
	if filter.Term != "" {
		pattern := "%" + filter.Term + "%"
		termMatch := sq.Or{}
		for _, column := range schema.Dictionary.TextColumns() {
			termMatch = append(termMatch, sq.ILike{column: pattern})
		}
		builder = builder.Where(termMatch)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_dictionary_query")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_dictionary")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e := Entry{}
		if err := rows.Scan(
			&e.ID, &e.Taatik, &e.Arabic, &e.ArabicTashkil, &e.Translation,
			&e.Tense, &e.Guf, &e.Wazen, &e.Shoresh, &e.Extras, &e.Gizra,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_dictionary_entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "search_dictionary")
	}

	return entries, nil
}
