package apperror

import "errors"

var (
	ErrHashOutOfRange = errors.New("hash too big to be a valid board")
	ErrInvalidMark    = errors.New("invalid mark value")
)
