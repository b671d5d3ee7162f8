package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the account exists but the
	// supplied password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserInactive is returned by Login when the credentials are correct
	// but the account has been deactivated.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised result of every token
	// validation failure: expired, tampered, wrong issuer, wrong algorithm.
	// Callers never see low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenMalformed is returned when a token passes signature and expiry
	// checks but is structurally unusable (e.g. missing subject).
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrPersonNotFound is returned when an upload or listing references a
	// person id with no matching row.
	ErrPersonNotFound = errors.New("person was not found")

	// ErrRecordNotFound is returned when an upload or listing references an
	// incident record id with no matching row.
	ErrRecordNotFound = errors.New("record was not found")
)
