package article

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

func (repository *PostgresRepository) GetMetadata(ctx context.Context, articleID int64) (*Metadata, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.ArticleMeta.URL,
		schema.ArticleMeta.VideoStart,
		schema.ArticleMeta.VideoEnd,
		schema.ArticleMeta.Table,
		schema.ArticleMeta.ArticleID,
	)

	meta := &Metadata{}
	err := repository.db.QueryRow(ctx, query, articleID).Scan(&meta.URL, &meta.VideoStart, &meta.VideoEnd)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article_metadata")
	}

	return meta, nil
}

func (repository *PostgresRepository) ListWords(ctx context.Context, articleID int64) ([]Word, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC;
	`,
		schema.Transcription.ID,
		schema.Transcription.DictionaryID,
		schema.Transcription.LineIndex,
		schema.Transcription.WordIndex,
		schema.Transcription.StartTime,
		schema.Transcription.EndTime,
		schema.Transcription.ArabicText,
		schema.Transcription.TaaticText,
		schema.Transcription.ArabicTextTashkil,
		schema.Transcription.HebrewWords,
		schema.Transcription.PunctuationMarks,
		schema.Transcription.Table,
		schema.Transcription.ArticleID,
		schema.Transcription.LineIndex,
		schema.Transcription.WordIndex,
	)

	rows, err := repository.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_article_words")
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		w := Word{}
		if err := rows.Scan(
			&w.ID, &w.DictionaryID, &w.LineIndex, &w.WordIndex,
			&w.StartTime, &w.EndTime, &w.ArabicText, &w.TaaticText,
			&w.ArabicTextTashkil, &w.HebrewWords, &w.PunctuationMarks,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_article_word")
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_article_words")
	}

	return words, nil
}
