package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

// profileRepository is the SQL-backed implementation of [ProfileRepository].
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveProfile inserts or replaces the profile of profile.UserID. The row's
// original created_at survives replacement.
func (p *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildUpsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "profileRepository.SaveProfile").
			Str("user_id", profile.UserID).
			Bool("is_encrypted", profile.IsEncrypted).
			Bool("retryable", p.retryable(err)).
			Msg("failed to save profile")
		return p.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// GetProfile returns the stored profile or [ErrProfileNotFound].
func (p *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildGetProfileQuery(userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile                            models.Profile
		fullName, calendarURL, contactName sql.NullString
		contactEmail, contactPhone         sql.NullString
		encryptedData, encryptionSalt      sql.NullString
		birthDate                          sql.NullTime
	)

	err = p.DB.QueryRowContext(ctx, query, args...).Scan(
		&profile.UserID,
		&profile.School,
		&profile.ClassName,
		&profile.Locale,
		&fullName,
		&birthDate,
		&calendarURL,
		&contactName,
		&contactEmail,
		&contactPhone,
		&encryptedData,
		&encryptionSalt,
		&profile.IsEncrypted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).
			Str("func", "profileRepository.GetProfile").
			Str("user_id", userID).
			Bool("retryable", p.retryable(err)).
			Msg("failed to read profile")
		return models.Profile{}, p.wrap(ErrScanningRow, err)
	}

	profile.Sensitive = models.SensitiveProfile{
		FullName:     fullName.String,
		CalendarURL:  calendarURL.String,
		ContactName:  contactName.String,
		ContactEmail: contactEmail.String,
		ContactPhone: contactPhone.String,
	}
	if birthDate.Valid {
		bd := birthDate.Time
		profile.Sensitive.BirthDate = &bd
	}
	profile.EncryptedData = encryptedData.String
	profile.EncryptionSalt = encryptionSalt.String

	return profile, nil
}

// DeleteProfile removes the profile of userID. Deleting a missing profile is
// not an error.
func (p *profileRepository) DeleteProfile(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildDeleteProfileQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "profileRepository.DeleteProfile").
			Str("user_id", userID).
			Msg("failed to delete profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
