// Package domain contains entity without logic, just meta-data
package domain

import "errors"

const MaxUserIDLen = 36

var (
	ErrUserIDEmpty   = errors.New("user id empty")
	ErrUserIDTooLong = errors.New("user id too long")
)

// UserID is the durable account identity. It is owned by the external
// user-account service; this process only relays it.
type UserID string

func ValidateUserID(id UserID) error {
	if len(id) == 0 {
		return ErrUserIDEmpty
	}
	if len(id) > MaxUserIDLen {
		return ErrUserIDTooLong
	}
	return nil
}
