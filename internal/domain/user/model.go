package user

import "time"

// Role is a closed set. Accounts keep their role for life; there is no
// fan-to-artist transition.
const (
	RoleFan    = "fan"
	RoleArtist = "artist"
)

type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ProviderID   string `gorm:"not null;uniqueIndex"`
	Name         string `gorm:"not null"`
	Biography    *string
	ThumbnailURL *string
	Role         string    `gorm:"type:varchar(16);not null"`
	Part         *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (u User) IsArtist() bool {
	return u.Role == RoleArtist
}
