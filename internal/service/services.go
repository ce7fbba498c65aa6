package service

import (
	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/validators"
)

type Services struct {
	Salts      SaltManager
	Attempts   AttemptManager
	Encryption EncryptionService
	AuthGate   AuthGate
	Profiles   ProfileService
	Documents  DocumentService
}

func NewServices(storages *store.Storages, keyChain crypto.KeyChain, cfg config.Security, logger *logger.Logger) *Services {
	salts := NewSaltManager(storages.UserRecords, keyChain, logger)
	attempts := NewPersistentAttemptManager(storages.DeviceCache, cfg.MaxAttempts, cfg.LockoutWindow, logger)
	encryption := NewEncryptionService(EncryptionDeps{
		KeyChain:     keyChain,
		Salts:        salts,
		Records:      storages.UserRecords,
		SessionCache: storages.SessionCache,
		DeviceCache:  storages.DeviceCache,
	}, EncryptionConfig{KeyTTL: cfg.KeyTTL, SlidingWindow: cfg.SlidingWindow}, logger)

	return &Services{
		Salts:      salts,
		Attempts:   attempts,
		Encryption: encryption,
		AuthGate:   NewAuthGate(encryption, attempts, validators.NewPinValidator(), logger),
		Profiles:   NewProfileService(storages.Profiles, encryption, validators.NewProfileValidator(), logger),
		Documents:  NewDocumentService(storages.Documents, storages.Blobs, encryption, logger),
	}
}
