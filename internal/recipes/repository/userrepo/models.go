package userrepo

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// UpdateUserRequest carries the fields a user may change on their own
// account. Nil fields are left untouched.
type UpdateUserRequest struct {
	ID           int64
	Name         *string
	PasswordHash *string
}
