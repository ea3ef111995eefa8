package genre

import "errors"

var (
	ErrInvalidName   = errors.New("genre name is invalid")
	ErrGenreNotFound = errors.New("genre not found")
)
