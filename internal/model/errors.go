package model

import "errors"

var (
	// Credential errors. Kept distinct so callers can decide whether to
	// collapse them into one user-facing message (the signin handler does).
	ErrUserNotFound      = errors.New("incorrect email")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrPasswordTooShort  = errors.New("password must have a minimum of 6 characters")
	ErrMalformedHash     = errors.New("stored password hash is malformed")

	// Token errors.
	ErrTokenMissing = errors.New("no token provided")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// ErrUserGone means a token verified fine but its subject no longer
	// exists (user deleted after issuance).
	ErrUserGone = errors.New("token subject no longer exists")

	// Storage errors.
	ErrDuplicateEmail = errors.New("user email already exists")
	ErrDuplicateSkill = errors.New("skill already exists")
	ErrDuplicateTitle = errors.New("portfolio item already exists")
	ErrSkillNotFound  = errors.New("skill not found")
	ErrItemNotFound   = errors.New("portfolio item not found")
)
