// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserRecord is the durable per-user encryption record. It is the source of
// truth for the user's salt and PIN verification hash.
type UserRecord struct {
	// UserID identifies the owner of the record.
	UserID string `json:"user_id"`

	// EncryptionSalt is the 32-byte hex-encoded salt. Immutable once written:
	// changing it makes every ciphertext of the user unrecoverable.
	EncryptionSalt string `json:"encryption_salt"`

	// PinHash is the verification hash of the PIN-derived key.
	PinHash string `json:"pin_hash"`

	// PinConfigured is set only together with a usable PinHash.
	PinConfigured bool `json:"pin_configured"`

	// UpdatedAt is the moment of the last write.
	UpdatedAt time.Time `json:"updated_at"`
}

// PinState is the PIN-related part of a [UserRecord].
type PinState struct {
	Hash       string
	Configured bool
}

// TableName returns the name of the database table associated with
// the UserRecord model.
func (u UserRecord) TableName() string {
	return "user_encryption"
}
