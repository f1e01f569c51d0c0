package entity

import "errors"

var (
	ErrInvalidColor         = errors.New("invalid color")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrStylesheetParse      = errors.New("stylesheet parse failure")
	ErrDepthExceeded        = errors.New("ancestor depth exceeded")
	ErrPageLoad             = errors.New("page load failure")
)
