package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/akwaabahomes/passcheck/internal/logger"
)

const passwordHistoryTable = "password_history"

// psql renders squirrel builders with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type passwordHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewPasswordHistoryRepository returns the PostgreSQL
// [PasswordHistoryRepository].
func NewPasswordHistoryRepository(db *DB, logger *logger.Logger) PasswordHistoryRepository {
	logger.Debug().Msg("creating password history repository")
	return &passwordHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *passwordHistoryRepository) AddPasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(passwordHistoryTable).
		Columns("user_id", "password_hash").
		Values(userID, passwordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "passwordHistoryRepository.AddPasswordHash").
			Int64("user_id", userID).
			Msg("failed to insert password history entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (p *passwordHistoryRepository) RecentPasswordHashes(ctx context.Context, userID int64, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, nil
	}

	query, args, err := psql.Select("password_hash").
		From(passwordHistoryTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Suffix("LIMIT ?", limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passwordHistoryRepository.RecentPasswordHashes").
			Int64("user_id", userID).
			Msg("failed to query password history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	hashes := make([]string, 0, limit)
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		hashes = append(hashes, h)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "passwordHistoryRepository.RecentPasswordHashes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return hashes, nil
}

func (p *passwordHistoryRepository) TrimPasswordHistory(ctx context.Context, userID int64, keep int) (int64, error) {
	log := logger.FromContext(ctx)

	del := psql.Delete(passwordHistoryTable).Where(sq.Eq{"user_id": userID})
	if keep > 0 {
		del = del.Where(sq.Expr(
			"id NOT IN (SELECT id FROM "+passwordHistoryTable+" WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?)",
			userID, keep,
		))
	}

	query, args, err := del.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passwordHistoryRepository.TrimPasswordHistory").
			Int64("user_id", userID).
			Msg("failed to trim password history")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}
