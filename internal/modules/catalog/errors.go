package catalog

import "errors"

var (
	ErrInvalidPetType   = errors.New("invalid pet type")
	ErrInvalidReference = errors.New("invalid reference")
	ErrAddressOwnership = errors.New("address does not belong to user")
	ErrNotPetsitter     = errors.New("user must be a petsitter")
	ErrInvalidRate      = errors.New("rate must be a positive number")
	ErrNotFound         = errors.New("not found")
)
