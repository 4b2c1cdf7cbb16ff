package preference

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

func (repository *PostgresRepository) GetStarred(ctx context.Context, userID string) (string, error) {
	return repository.getColumn(ctx, schema.UserPreferences.StarredItems, userID, "get_starred_items")
}

func (repository *PostgresRepository) ReplaceStarred(ctx context.Context, userID string, itemsJSON string) error {
	return repository.replaceColumn(ctx, schema.UserPreferences.StarredItems, userID, itemsJSON, "replace_starred_items")
}

func (repository *PostgresRepository) GetVideoOrder(ctx context.Context, userID string) (string, error) {
	return repository.getColumn(ctx, schema.UserPreferences.VideoOrder, userID, "get_video_order")
}

func (repository *PostgresRepository) ReplaceVideoOrder(ctx context.Context, userID string, orderJSON string) error {
	return repository.replaceColumn(ctx, schema.UserPreferences.VideoOrder, userID, orderJSON, "replace_video_order")
}

// getColumn reads one preference column for the user. A missing row maps to
// dberr.ErrNoRows; a row whose column is NULL reads as the empty string.
func (repository *PostgresRepository) getColumn(ctx context.Context, column, userID, action string) (string, error) {
	query, args, err := sq.Select(column).
		From(schema.UserPreferences.Table).
		Where(sq.Eq{schema.UserPreferences.UserID: userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", dberr.Wrap(err, action)
	}

	var payload *string
	if err := repository.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		return "", dberr.Wrap(err, action)
	}
	if payload == nil {
		return "", nil
	}

	return *payload, nil
}

// replaceColumn overwrites one preference column whole, creating the user's
// row on first write and stamping updated_at on every write.
func (repository *PostgresRepository) replaceColumn(ctx context.Context, column, userID, payloadJSON, action string) error {
	query, args, err := sq.Insert(schema.UserPreferences.Table).
		Columns(schema.UserPreferences.UserID, column, schema.UserPreferences.UpdatedAt).
		Values(userID, sq.Expr("?::jsonb", payloadJSON), sq.Expr("now()")).
		Suffix("ON CONFLICT (" + schema.UserPreferences.UserID + ") DO UPDATE SET " +
			column + " = EXCLUDED." + column + ", " +
			schema.UserPreferences.UpdatedAt + " = EXCLUDED." + schema.UserPreferences.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, action)
	}

	if _, err := repository.db.Exec(ctx, query, args...); err != nil {
		return dberr.Wrap(err, action)
	}

	return nil
}
