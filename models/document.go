// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Document is the metadata row of a generated absence-form PDF. The bytes
// themselves live in blob storage under StoragePath, encrypted when
// IsEncrypted is true.
type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FileName    string    `json:"file_name"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	IsEncrypted bool      `json:"is_encrypted"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with
// the Document model.
func (d Document) TableName() string {
	return "documents"
}
