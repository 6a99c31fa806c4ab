package domain

import "errors"

var (
	// Authentication / authorization.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInactiveUser       = errors.New("inactive user")
	ErrForbidden          = errors.New("not enough permissions")

	// Users.
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Tables.
	ErrTableNotFound    = errors.New("table not found")
	ErrTableNumberTaken = errors.New("table number already registered")

	// Reservations.
	ErrReservationNotFound = errors.New("reservation not found")

	// Promotions.
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPromoCodeTaken    = errors.New("promotion code already registered")
)
