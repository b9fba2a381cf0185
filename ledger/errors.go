package ledger

import "errors"

// Sentinel errors returned by the dataset loaders.
//
// Use [errors.Is] for comparisons; returned errors wrap these with the
// offending path.
var (
	// ErrUnsupportedFormat is returned when a dataset file extension is not
	// .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("ledger: unsupported dataset format")

	// ErrEmptyPath is returned when only one of the two dataset paths is set.
	ErrEmptyPath = errors.New("ledger: dataset path must not be empty")
)
