package csvrow

import "errors"

var (
	// ErrNotFound indicates the CSV file does not exist.
	ErrNotFound = errors.New("csvrow: file not found")

	// ErrReadFailed indicates the CSV file exists but could not be read or parsed.
	ErrReadFailed = errors.New("csvrow: read failed")
)
