package order

import "errors"

var (
	ErrInvalidReference    = errors.New("invalid referenced rows")
	ErrQuantityNotNumeric  = errors.New("quantity must be a number")
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrInvalidDatetime     = errors.New("invalid start_datetime format")
	ErrNormalUserRole      = errors.New("normal_user_id must be a normal user")
	ErrPetsitterRole       = errors.New("petsitter_user_id must be a petsitter")
	ErrPetOwnership        = errors.New("pet does not belong to normal user")
	ErrAddressOwnership    = errors.New("address does not belong to normal user")
	ErrRatingNotNumeric    = errors.New("rating must be a number")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 5")
	ErrNotParticipant      = errors.New("user not part of this order")
	ErrNotFound            = errors.New("not found")
)
