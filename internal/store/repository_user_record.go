package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

// userRecordRepository is the SQL-backed implementation of
// [UserRecordRepository]. It reads and writes the "user_encryption" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions. Salts and hashes are never
// logged.
type userRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewUserRecordRepository constructs a [UserRecordRepository] backed by the
// provided database connection and logger.
func NewUserRecordRepository(db *DB, logger *logger.Logger) UserRecordRepository {
	logger.Debug().Msg("creating user record repository")
	return &userRecordRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetEncryptionSalt returns the stored salt of userID, or "" when the user
// has no record.
func (r *userRecordRepository) GetEncryptionSalt(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetSaltQuery(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt sql.NullString
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&salt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		log.Err(err).
			Str("func", "userRecordRepository.GetEncryptionSalt").
			Str("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to read encryption salt")
		return "", r.wrap(ErrExecutingQuery, err)
	}

	return salt.String, nil
}

// CreateEncryptionSalt inserts salt unless a record already exists and then
// re-reads the stored value. When another device won the race the returned
// salt differs from the argument; callers must use the returned one.
func (r *userRecordRepository) CreateEncryptionSalt(ctx context.Context, userID, salt string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertSaltQuery(userID, salt, r.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "userRecordRepository.CreateEncryptionSalt").
			Str("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert encryption salt")
		return "", r.wrap(ErrExecutingStatement, err)
	}

	stored, err := r.GetEncryptionSalt(ctx, userID)
	if err != nil {
		return "", err
	}
	if stored == "" {
		return "", ErrSaltNotPersisted
	}

	if stored != salt {
		log.Info().
			Str("func", "userRecordRepository.CreateEncryptionSalt").
			Str("user_id", userID).
			Msg("salt already existed, keeping stored value")
	}

	return stored, nil
}

// GetPinState returns the PIN hash and configured flag of userID. A user
// without a record has no PIN configured.
func (r *userRecordRepository) GetPinState(ctx context.Context, userID string) (models.PinState, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetPinStateQuery(userID)
	if err != nil {
		return models.PinState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		hash       sql.NullString
		configured sql.NullBool
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&hash, &configured)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PinState{}, nil
	case err != nil:
		log.Err(err).
			Str("func", "userRecordRepository.GetPinState").
			Str("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to read pin state")
		return models.PinState{}, r.wrap(ErrExecutingQuery, err)
	}

	return models.PinState{Hash: hash.String, Configured: configured.Bool && hash.String != ""}, nil
}

// SavePinHash stores hash and sets the configured flag in one statement.
// The record must already exist (it is created together with the salt).
func (r *userRecordRepository) SavePinHash(ctx context.Context, userID, hash string) error {
	query, args, err := r.buildSavePinHashQuery(userID, hash, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "userRecordRepository.SavePinHash", userID, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserRecordNotFound
	}

	return nil
}

// ClearPinHash removes the hash and resets the configured flag. Clearing a
// missing record is not an error.
func (r *userRecordRepository) ClearPinHash(ctx context.Context, userID string) error {
	query, args, err := r.buildClearPinHashQuery(userID, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "userRecordRepository.ClearPinHash", userID, query, args)
	return err
}

// DeleteEncryptionState drops the record of userID, salt included.
func (r *userRecordRepository) DeleteEncryptionState(ctx context.Context, userID string) error {
	query, args, err := r.buildDeleteUserRecordQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "userRecordRepository.DeleteEncryptionState", userID, query, args)
	return err
}

func (r *userRecordRepository) exec(ctx context.Context, fn, userID, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute statement")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
