package live

import "errors"

var (
	ErrLiveNotFound       = errors.New("live not found")
	ErrFanCannotCreate    = errors.New("fans cannot create lives")
	ErrNotHostGroupMember = errors.New("not a member of the host group")
	ErrInvalidStyle       = errors.New("invalid live style")
	ErrInvalidSchedule    = errors.New("invalid schedule window")
)
