// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SensitiveProfile holds every profile field that must never reach the
// backend in plaintext. All of them are bundled into one ciphertext.
type SensitiveProfile struct {
	FullName     string     `json:"fullName,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	CalendarURL  string     `json:"calendarUrl,omitempty"`
	ContactName  string     `json:"contactName,omitempty"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	ContactPhone string     `json:"contactPhone,omitempty"`
}

// IsZero reports whether no sensitive field is set.
func (s SensitiveProfile) IsZero() bool {
	return s.FullName == "" && s.BirthDate == nil && s.CalendarURL == "" &&
		s.ContactName == "" && s.ContactEmail == "" && s.ContactPhone == ""
}

// Profile is a user's absence-form profile. Non-sensitive fields always stay
// in the clear; Sensitive is either populated (plaintext form) or empty with
// EncryptedData holding its ciphertext (encrypted form).
type Profile struct {
	UserID    string `json:"user_id"`
	School    string `json:"school"`
	ClassName string `json:"class_name"`
	Locale    string `json:"locale"`

	Sensitive SensitiveProfile `json:"sensitive"`

	// EncryptedData is the ciphertext of Sensitive when IsEncrypted is true.
	EncryptedData string `json:"encrypted_data,omitempty"`
	// EncryptionSalt is the salt used to produce EncryptedData.
	EncryptionSalt string `json:"encryption_salt,omitempty"`
	// IsEncrypted marks the record as being in encrypted form.
	IsEncrypted bool `json:"is_encrypted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StillEncrypted reports whether the profile carries ciphertext that has not
// been decrypted yet.
func (p Profile) StillEncrypted() bool {
	return p.IsEncrypted && p.EncryptedData != ""
}

// TableName returns the name of the database table associated with
// the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
