package service

import "errors"

var (
	// ErrEmailTaken is returned by sign-up when the address already has an
	// account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials covers both unknown emails and wrong passwords so
	// the API does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a token is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateTrade is returned when the user already journaled a trade
	// with the same symbol and buy date.
	ErrDuplicateTrade = errors.New("a trade with this symbol and buy date already exists")

	// ErrTradeNotFound is returned when an update targets a trade the user
	// does not have.
	ErrTradeNotFound = errors.New("trade not found")
)
