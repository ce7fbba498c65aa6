package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/validators"
	"github.com/MKhiriev/go-absence-keeper/models"
)

type profileService struct {
	profiles   store.ProfileRepository
	encryption EncryptionService
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

// NewProfileService returns a [ProfileService].
func NewProfileService(profiles store.ProfileRepository, encryption EncryptionService, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:   profiles,
		encryption: encryption,
		validator:  validator,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Save validates profile, encrypts its sensitive fields and persists it.
// Without a resident key the profile is stored in plaintext form. The stored
// form is returned.
func (s *profileService) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if err := s.validator.Validate(ctx, profile); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.encryption.EncryptProfileData(ctx, profile)
	switch {
	case errors.Is(err, ErrKeyNotResident):
		logger.FromContext(ctx).Warn().Str("user_id", profile.UserID).Msg("no key resident, storing profile unencrypted")
		stored = profile
		stored.IsEncrypted = false
	case err != nil:
		return models.Profile{}, fmt.Errorf("encrypt profile: %w", err)
	}

	now := s.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	if err = s.profiles.SaveProfile(ctx, stored); err != nil {
		return models.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	return stored, nil
}

// Load reads the profile of userID and decrypts it. When decryption is not
// possible the still-encrypted profile is returned together with the error.
func (s *profileService) Load(ctx context.Context, userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, ErrNoUserID
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return s.encryption.DecryptProfileData(ctx, profile)
}

// Delete removes the profile of userID.
func (s *profileService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoUserID
	}
	if err := s.profiles.DeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
