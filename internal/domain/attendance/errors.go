package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrEmptyImport    = errors.New("no usable rows in attendance import")
)
