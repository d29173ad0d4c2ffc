package item

import "errors"

var (
	ErrEmptyInput         = errors.New("text is required")
	ErrInputTooLong       = errors.New("text is too long")
	ErrInvalidDefaultDays = errors.New("defaultExpirationDays must be between 0 and 36500")
	ErrEmptyBatch         = errors.New("items are required")
	ErrTooManyItems       = errors.New("too many items")
)
