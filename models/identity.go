// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated subject presented by the identity provider.
// Both fields take part in key derivation, so they must be passed exactly as
// the provider returned them.
type Identity struct {
	// UserID is the provider-assigned user identifier (JWT "sub" claim).
	UserID string `json:"user_id"`

	// Email is the e-mail address bound to the identity (JWT "email" claim).
	Email string `json:"email"`
}

// KeyMaterial returns the identity part of the key-derivation secret.
func (i Identity) KeyMaterial() string {
	return i.UserID + i.Email
}
