package features

import "errors"

var (
	// ErrUnknownCategoryValue is returned when an encoder sees a categorical
	// value that was absent from its fitted vocabulary.
	ErrUnknownCategoryValue = errors.New("unknown categorical value")

	// ErrSchemaMismatch is returned when a feature vector or artifact does
	// not match the fixed training schema. It indicates a wiring bug, not a
	// bad request.
	ErrSchemaMismatch = errors.New("feature schema mismatch")
)
