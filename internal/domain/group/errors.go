package group

import "errors"

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrNotAMember         = errors.New("not a member of the group")
	ErrAlreadyMember      = errors.New("already a member of the group")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationConsumed = errors.New("invitation already consumed")
)
