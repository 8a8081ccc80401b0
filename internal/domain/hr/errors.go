package hr

import "errors"

var (
	ErrRecordNotFound = errors.New("hr record not found")
	ErrRecordExists   = errors.New("hr record already exists for this agent")
)
