package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidDate   = errors.New("invalid date key")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidCursor = errors.New("invalid pagination cursor")
)
