package content

import "errors"

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrEmptyKey          = errors.New("record key cannot be empty")
)
