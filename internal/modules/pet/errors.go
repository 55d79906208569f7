package pet

import "errors"

var (
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidPetType   = errors.New("invalid pet type")
	ErrNotNormalUser    = errors.New("only normal users can create pets")
	ErrAgeNotNumeric    = errors.New("age must be a number")
	ErrAgeNegative      = errors.New("age must be positive")
)
