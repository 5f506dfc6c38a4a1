package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")

	ErrTripNotFound     = errors.New("trip not found")
	ErrInvalidJoinCode  = errors.New("invalid join code")
	ErrNotTripMember    = errors.New("not a member of this trip")
	ErrInsufficientRole = errors.New("insufficient permissions")
	ErrNotResourceOwner = errors.New("not the owner of this resource")

	ErrExpenseNotFound     = errors.New("expense not found")
	ErrDayNotFound         = errors.New("day not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrPackingItemNotFound = errors.New("packing item not found")
	ErrMediaNotFound       = errors.New("media not found")

	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrUnsupportedMime = errors.New("unsupported file type")

	ErrJoinCodeExhausted = errors.New("could not allocate a unique join code")
	ErrStorageUpload     = errors.New("storage upload failed")
	ErrDatabaseError     = errors.New("database error")
)
