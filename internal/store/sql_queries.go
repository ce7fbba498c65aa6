package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-absence-keeper/models"
)

var (
	userRecordTable = models.UserRecord{}.TableName()
	profileTable    = models.Profile{}.TableName()
	documentTable   = models.Document{}.TableName()
)

var profileColumns = []string{
	"user_id",
	"school",
	"class_name",
	"locale",
	"full_name",
	"birth_date",
	"calendar_url",
	"contact_name",
	"contact_email",
	"contact_phone",
	"encrypted_data",
	"encryption_salt",
	"is_encrypted",
	"created_at",
	"updated_at",
}

var documentColumns = []string{
	"id",
	"user_id",
	"file_name",
	"storage_path",
	"size",
	"is_encrypted",
	"created_at",
}

func (db *DB) buildGetSaltQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("encryption_salt").
		From(userRecordTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildInsertSaltQuery inserts the record only when the user has none, so a
// concurrent first writer is never overwritten.
func (db *DB) buildInsertSaltQuery(userID, salt string, now time.Time) (string, []any, error) {
	return db.builder.
		Insert(userRecordTable).
		Columns("user_id", "encryption_salt", "pin_configured", "updated_at").
		Values(userID, salt, false, now).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
}

func (db *DB) buildGetPinStateQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("pin_hash", "pin_configured").
		From(userRecordTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildSavePinHashQuery(userID, hash string, now time.Time) (string, []any, error) {
	return db.builder.
		Update(userRecordTable).
		Set("pin_hash", hash).
		Set("pin_configured", true).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildClearPinHashQuery(userID string, now time.Time) (string, []any, error) {
	return db.builder.
		Update(userRecordTable).
		Set("pin_hash", nil).
		Set("pin_configured", false).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildDeleteUserRecordQuery(userID string) (string, []any, error) {
	return db.builder.
		Delete(userRecordTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpsertProfileQuery writes the profile; created_at of an existing row is
// preserved. Sensitive columns are NULL for encrypted profiles.
func (db *DB) buildUpsertProfileQuery(p models.Profile) (string, []any, error) {
	var birthDate any
	if p.Sensitive.BirthDate != nil {
		birthDate = *p.Sensitive.BirthDate
	}

	return db.builder.
		Insert(profileTable).
		Columns(profileColumns...).
		Values(
			p.UserID,
			p.School,
			p.ClassName,
			p.Locale,
			nullString(p.Sensitive.FullName),
			birthDate,
			nullString(p.Sensitive.CalendarURL),
			nullString(p.Sensitive.ContactName),
			nullString(p.Sensitive.ContactEmail),
			nullString(p.Sensitive.ContactPhone),
			nullString(p.EncryptedData),
			nullString(p.EncryptionSalt),
			p.IsEncrypted,
			p.CreatedAt,
			p.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			school = excluded.school,
			class_name = excluded.class_name,
			locale = excluded.locale,
			full_name = excluded.full_name,
			birth_date = excluded.birth_date,
			calendar_url = excluded.calendar_url,
			contact_name = excluded.contact_name,
			contact_email = excluded.contact_email,
			contact_phone = excluded.contact_phone,
			encrypted_data = excluded.encrypted_data,
			encryption_salt = excluded.encryption_salt,
			is_encrypted = excluded.is_encrypted,
			updated_at = excluded.updated_at`).
		ToSql()
}

func (db *DB) buildGetProfileQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(profileColumns...).
		From(profileTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildDeleteProfileQuery(userID string) (string, []any, error) {
	return db.builder.
		Delete(profileTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) buildInsertDocumentQuery(d models.Document) (string, []any, error) {
	return db.builder.
		Insert(documentTable).
		Columns(documentColumns...).
		Values(d.ID, d.UserID, d.FileName, d.StoragePath, d.Size, d.IsEncrypted, d.CreatedAt).
		ToSql()
}

func (db *DB) buildGetDocumentQuery(userID, id string) (string, []any, error) {
	return db.builder.
		Select(documentColumns...).
		From(documentTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func (db *DB) buildListDocumentsQuery(userID string) (string, []any, error) {
	return db.builder.
		Select(documentColumns...).
		From(documentTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
}

func (db *DB) buildDeleteDocumentQuery(userID, id string) (string, []any, error) {
	return db.builder.
		Delete(documentTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
