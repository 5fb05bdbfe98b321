package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a query or delete targets a vault
	// item (identified by user_id and id) that does not exist in the
	// database.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrFolderNotFound is returned when a query or delete targets a folder
	// that does not exist in the database.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrStoreIO is returned (wrapped) when the underlying persistence
	// engine fails. The condition is considered retryable by callers.
	ErrStoreIO = errors.New("store i/o failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. All of them match ErrStoreIO via errors.Is.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = wrapIO("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = wrapIO("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = wrapIO("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = wrapIO("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = wrapIO("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = wrapIO("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = wrapIO("failed to scan rows")
)

// wrapIO builds a sentinel that also matches ErrStoreIO, so callers can
// either branch on the precise failure or treat the whole family as a
// retryable store error.
func wrapIO(msg string) error {
	return &ioError{msg: msg}
}

type ioError struct {
	msg string
}

func (e *ioError) Error() string { return e.msg }

func (e *ioError) Is(target error) bool { return target == ErrStoreIO }
