package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserRecordNotFound is returned when an update targets a user that has
	// no encryption record yet.
	ErrUserRecordNotFound = errors.New("user encryption record was not found")

	// ErrSaltNotPersisted is returned when the salt insert completes but the
	// follow-up read finds nothing, meaning the record was not persisted.
	ErrSaltNotPersisted = errors.New("encryption salt was not persisted")

	// ErrProfileNotFound is returned when no profile exists for the user.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrDocumentNotFound is returned when a document row (identified by id
	// and user_id) does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrCacheMiss is returned by [KeyCache.Get] for absent or expired entries.
	ErrCacheMiss = errors.New("cache miss")

	// ErrBlobNotFound is returned by [BlobStorage.Get] for unknown paths.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobPath is returned for empty or escaping blob paths.
	ErrInvalidBlobPath = errors.New("invalid blob path")

	// ErrTransient is joined into errors of operations that failed for a
	// reason that may go away by itself: a lost connection, a deadlock or a
	// database file locked by another process. Nothing is retried
	// automatically; the user is asked to try again.
	ErrTransient = errors.New("temporary database failure")

	// ErrUnsupportedDriver is returned by [NewConnect] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
