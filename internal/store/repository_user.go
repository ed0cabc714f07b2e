package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository returns the PostgreSQL [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createUser, user.Login, user.Name, user.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updatePassword, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// RehashPassword swaps the stored hash for one with stronger parameters. The
// update only applies while the old hash is still current, so a concurrent
// password change wins.
func (r *userRepository) RehashPassword(ctx context.Context, userID int64, oldHash, newHash string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, rehashPassword, userID, newHash, oldHash); err != nil {
		log.Err(err).Str("func", "*userRepository.RehashPassword").Int64("user_id", userID).Msg("error rehashing password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *userRepository) MarkExpiredPasswords(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("users").
		Set("must_change_password", true).
		Where(sq.Eq{"must_change_password": false}).
		Where(sq.Lt{"password_changed_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.MarkExpiredPasswords").Msg("error flagging expired passwords")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Login,
		&u.Name,
		&u.PasswordHash,
		&u.PasswordChangedAt,
		&u.MustChangePassword,
		&u.CreatedAt,
	)
	return u, err
}
