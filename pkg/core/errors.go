package core

import "errors"

// Common errors.
//
// Callers match them with errors.Is. Errors from the service and the store
// adapters wrap one of these with the offending value or path.
var (
	// ErrValidation reports an invalid value handed to a constructor or setter
	// (empty title, empty category name, nil note).
	ErrValidation = errors.New("validation failed")

	// ErrParse reports a record that cannot be turned back into a Note
	// (missing field, malformed timestamp).
	ErrParse = errors.New("cannot parse note record")

	// ErrFileAccess reports a data file that cannot be read or written.
	ErrFileAccess = errors.New("cannot access data file")

	// ErrFormat reports data file content that is not valid for its format.
	ErrFormat = errors.New("malformed data file")

	// ErrLegacyFormat reports a data file in the old category -> display strings shape.
	ErrLegacyFormat = errors.New("data file uses the legacy display format")

	// ErrNotFound reports a lookup by title that matched nothing.
	ErrNotFound = errors.New("note not found")

	ErrReadOnly = errors.New("store is in read-only mode")

	// ErrVersioning reports a git failure while preparing or committing the
	// data file history.
	ErrVersioning = errors.New("versioning failed")

	ErrWatchUnsupported = errors.New("repository does not support watching")
)
