package fine

import "errors"

var (
	ErrFineNotFound = errors.New("fine not found")
)
