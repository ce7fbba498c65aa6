package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
)

type saltManager struct {
	records  store.UserRecordRepository
	keyChain crypto.KeyChain

	mu    sync.Mutex
	salts map[string]string

	logger *logger.Logger
}

// NewSaltManager returns a [SaltManager] reading and writing salts through
// records and generating new ones with keyChain.
func NewSaltManager(records store.UserRecordRepository, keyChain crypto.KeyChain, logger *logger.Logger) SaltManager {
	return &saltManager{
		records:  records,
		keyChain: keyChain,
		salts:    make(map[string]string),
		logger:   logger,
	}
}

// GetSaltForUser implements [SaltManager]. Lookup order: local cache, durable
// record, then generation. A generated salt is written insert-if-absent and
// the stored value is used, so concurrent first uses converge on one salt.
func (s *saltManager) GetSaltForUser(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrNoUserID
	}

	if salt, ok := s.cached(userID); ok {
		return salt, nil
	}

	log := logger.FromContext(ctx)

	salt, err := s.records.GetEncryptionSalt(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("read salt of user: %w", err)
	}
	if salt != "" {
		s.remember(userID, salt)
		return salt, nil
	}

	generated, err := s.keyChain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	stored, err := s.records.CreateEncryptionSalt(ctx, userID, generated)
	if err != nil {
		log.Err(err).Str("func", "saltManager.GetSaltForUser").Str("user_id", userID).Msg("failed to persist new salt")
		return "", fmt.Errorf("persist salt of user: %w", err)
	}
	if stored != generated {
		log.Info().Str("user_id", userID).Msg("another writer created the salt first, using stored value")
	}

	s.remember(userID, stored)
	return stored, nil
}

// ClearSaltForUser implements [SaltManager].
func (s *saltManager) ClearSaltForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.salts, userID)
}

func (s *saltManager) cached(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	salt, ok := s.salts[userID]
	return salt, ok
}

func (s *saltManager) remember(userID, salt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salts[userID] = salt
}
