package users

import "errors"

// ErrUserNotFound is returned when a user lookup finds no matching record
var ErrUserNotFound = errors.New("user not found")
