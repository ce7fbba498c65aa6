package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

// Encrypt implements [EncryptionService]. The record-level key is
// DeriveKey(residentKey, userSalt); the same salt is reused for every record
// of the user so existing ciphertexts stay readable.
func (e *encryptionService) Encrypt(ctx context.Context, record any, userID string) (models.EncryptedPayload, error) {
	recordKey, salt, err := e.recordKeyFor(ctx, userID)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	plaintext, err := json.Marshal(record)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("serialize record: %w", err)
	}

	ciphertext, err := e.keyChain.EncryptWithKey(plaintext, recordKey)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encrypt record: %w", err)
	}

	return models.EncryptedPayload{Ciphertext: ciphertext, Salt: salt}, nil
}

// Decrypt implements [EncryptionService].
func (e *encryptionService) Decrypt(ctx context.Context, ciphertext, salt string) models.DecryptResult {
	key, _, ok := e.residentKey()
	switch {
	case !ok:
		return models.DecryptFailure("no encryption key is resident")
	case ciphertext == "":
		return models.DecryptFailure("ciphertext is empty")
	case salt == "":
		return models.DecryptFailure("salt is missing")
	}

	plaintext, err := e.keyChain.DecryptWithKey(ciphertext, e.deriveRecordKey(key, salt))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("record decryption failed")
		return models.DecryptFailure("wrong key or corrupted ciphertext")
	}

	return models.DecryptSuccess(plaintext)
}

// DecryptField implements [EncryptionService]. A field encrypted as a
// single-key object or as a JSON string is unwrapped to its value.
func (e *encryptionService) DecryptField(ctx context.Context, ciphertext, userID string) (string, bool) {
	log := logger.FromContext(ctx)

	if ciphertext == "" || !e.IsInitialized() {
		return "", false
	}

	salt, err := e.salts.GetSaltForUser(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("cannot decrypt field without salt")
		return "", false
	}

	result := e.Decrypt(ctx, ciphertext, salt)
	if !result.Success {
		log.Warn().Str("user_id", userID).Str("reason", result.Reason).Msg("field decryption failed")
		return "", false
	}

	return unwrapField(result.Plaintext), true
}

// EncryptProfileData implements [EncryptionService]. Profiles already in
// encrypted form are returned unchanged.
func (e *encryptionService) EncryptProfileData(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.StillEncrypted() {
		return profile, nil
	}

	payload, err := e.Encrypt(ctx, profile.Sensitive, profile.UserID)
	if err != nil {
		return profile, err
	}

	out := profile
	out.Sensitive = models.SensitiveProfile{}
	out.EncryptedData = payload.Ciphertext
	out.EncryptionSalt = payload.Salt
	out.IsEncrypted = true
	return out, nil
}

// DecryptProfileData implements [EncryptionService].
func (e *encryptionService) DecryptProfileData(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if !profile.IsEncrypted {
		return profile, nil
	}

	log := logger.FromContext(ctx)

	if profile.EncryptedData == "" {
		return profile, fmt.Errorf("%w: flagged encrypted without ciphertext", ErrProfileUndecryptable)
	}
	if !e.IsInitialized() {
		log.Error().Str("user_id", profile.UserID).Msg("cannot decrypt profile, no key resident")
		return profile, ErrKeyNotResident
	}

	result := e.Decrypt(ctx, profile.EncryptedData, profile.EncryptionSalt)
	if !result.Success {
		log.Error().Str("user_id", profile.UserID).Str("reason", result.Reason).Msg("profile decryption failed")
		return profile, fmt.Errorf("%w: %s", ErrProfileUndecryptable, result.Reason)
	}

	var sensitive models.SensitiveProfile
	if err := result.Decode(&sensitive); err != nil {
		return profile, fmt.Errorf("%w: %w", ErrProfileUndecryptable, err)
	}

	out := profile
	out.Sensitive = sensitive
	out.EncryptedData = ""
	out.EncryptionSalt = ""
	out.IsEncrypted = false
	return out, nil
}

// EncryptBlob implements [EncryptionService].
func (e *encryptionService) EncryptBlob(ctx context.Context, blob []byte, userID string) ([]byte, error) {
	recordKey, _, err := e.recordKeyFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	out, err := e.keyChain.EncryptBytes(blob, recordKey)
	if err != nil {
		return nil, fmt.Errorf("encrypt blob: %w", err)
	}
	return out, nil
}

// DecryptBlob implements [EncryptionService].
func (e *encryptionService) DecryptBlob(ctx context.Context, blob []byte, userID string) ([]byte, error) {
	recordKey, _, err := e.recordKeyFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	out, err := e.keyChain.DecryptBytes(blob, recordKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt blob: %w", err)
	}
	return out, nil
}

// recordKeyFor returns the record-level key of userID and the salt it was
// derived with.
func (e *encryptionService) recordKeyFor(ctx context.Context, userID string) (string, string, error) {
	key, owner, ok := e.residentKey()
	if !ok {
		return "", "", ErrKeyNotResident
	}
	if owner != userID {
		return "", "", ErrKeyOwnerMismatch
	}

	salt, err := e.salts.GetSaltForUser(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("get salt for record key: %w", err)
	}

	return e.deriveRecordKey(key, salt), salt, nil
}

func (e *encryptionService) deriveRecordKey(key, salt string) string {
	e.mu.Lock()
	recordKey, ok := e.recordKeys[salt]
	ok = ok && e.key == key
	e.mu.Unlock()
	if ok {
		return recordKey
	}

	recordKey = e.keyChain.DeriveKey(key, salt)

	e.mu.Lock()
	if e.key == key {
		e.recordKeys[salt] = recordKey
	}
	e.mu.Unlock()

	return recordKey
}

// unwrapField returns the value of a JSON string or of a single-key object
// holding one, and the raw plaintext otherwise.
func unwrapField(plaintext []byte) string {
	var s string
	if json.Unmarshal(plaintext, &s) == nil {
		return s
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(plaintext, &obj) == nil && len(obj) == 1 {
		for _, v := range obj {
			if json.Unmarshal(v, &s) == nil {
				return s
			}
			return string(v)
		}
	}

	return string(plaintext)
}
