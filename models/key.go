// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KeyState describes where the encryption service is in the key lifecycle.
type KeyState int

const (
	// KeyUninitialized means no key is resident in memory.
	KeyUninitialized KeyState = iota
	// KeyEstablishing means a PIN setup or verification is in flight.
	KeyEstablishing
	// KeyResident means a key is held in memory and usable.
	KeyResident
)

// String implements [fmt.Stringer].
func (s KeyState) String() string {
	switch s {
	case KeyUninitialized:
		return "uninitialized"
	case KeyEstablishing:
		return "establishing"
	case KeyResident:
		return "resident"
	default:
		return "unknown"
	}
}

// CachedKey is the serialized wrapper of a user's derived key as it is kept in
// the session and device caches.
type CachedKey struct {
	UserID    string    `json:"userId"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ValidFor reports whether the wrapper may be trusted for userID at moment now:
// the owner must match exactly and the expiry must lie in the future.
func (c CachedKey) ValidFor(userID string, now time.Time) bool {
	if c.UserID == "" || c.Key == "" {
		return false
	}
	return c.UserID == userID && now.Before(c.ExpiresAt)
}
