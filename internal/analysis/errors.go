package analysis

import "errors"

var (
	// ErrEmptyDataset is returned when an average is requested over zero rows.
	ErrEmptyDataset = errors.New("dataset has no rows")
	// ErrEmptyCategorySet is returned when no category columns are supplied.
	ErrEmptyCategorySet = errors.New("no categories supplied")
)
