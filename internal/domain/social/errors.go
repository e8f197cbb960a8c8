package social

import "errors"

var (
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)
