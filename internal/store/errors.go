package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOpeningSettingsStore is returned when the bbolt settings database
	// cannot be opened or its buckets cannot be initialised.
	ErrOpeningSettingsStore = errors.New("error opening settings store")

	// ErrEncodingSettingValue is returned when a value cannot be
	// serialized for storage.
	ErrEncodingSettingValue = errors.New("error encoding setting value")

	// ErrDecodingSettingValue is returned when a stored value cannot be
	// deserialized, indicating on-disk corruption or a format change.
	ErrDecodingSettingValue = errors.New("error decoding setting value")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query for the cipher cache fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a cipher cache query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning cipher cache rows into
	// destination structs fails.
	ErrScanningRows = errors.New("failed to scan cipher rows")
)
