package info

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

func (repository *PostgresRepository) ListLetterMap(ctx context.Context) ([]LetterMapping, error) {
	return repository.listMappings(ctx, schema.LetterMap, "list_letter_map")
}

func (repository *PostgresRepository) ListLetterMapSubRows(ctx context.Context) ([]LetterMapping, error) {
	return repository.listMappings(ctx, schema.LetterMapSubRows, "list_letter_map_sub_rows")
}

// listMappings serves both transliteration tables, which share one layout.
func (repository *PostgresRepository) listMappings(ctx context.Context, table schema.LetterMapTable, action string) ([]LetterMapping, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		table.Extras,
		table.TaSystemMap,
		table.ArabLetter,
		table.LetterNameTaat,
		table.LetterNameArab,
		table.Table,
		table.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var mappings []LetterMapping
	for rows.Next() {
		m := LetterMapping{}
		if err := rows.Scan(&m.Extras, &m.TaSystemMap, &m.ArabLetter, &m.LetterNameTaat, &m.LetterNameArab); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return mappings, nil
}

func (repository *PostgresRepository) ListHeaders(ctx context.Context) ([]HeaderRow, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.MapHeader.SubTitle,
		schema.MapHeader.Table,
		schema.MapHeader.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_map_headers")
	}
	defer rows.Close()

	var headers []HeaderRow
	for rows.Next() {
		h := HeaderRow{}
		if err := rows.Scan(&h.SubTitle); err != nil {
			return nil, dberr.Wrap(err, "list_map_headers")
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_map_headers")
	}

	return headers, nil
}

func (repository *PostgresRepository) ListVowelMethods(ctx context.Context) ([]VowelMethod, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.NikudMethod.ID,
		schema.NikudMethod.Name,
		schema.NikudMethod.Explanations,
		schema.NikudMethod.Table,
		schema.NikudMethod.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_vowel_methods")
	}
	defer rows.Close()

	var methods []VowelMethod
	for rows.Next() {
		m := VowelMethod{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Explanations); err != nil {
			return nil, dberr.Wrap(err, "list_vowel_methods")
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_vowel_methods")
	}

	return methods, nil
}
