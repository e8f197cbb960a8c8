package group

import "time"

type Group struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	EnglishName *string
	Biography   *string
	Since       *time.Time
	ArtworkURL  *string
	Hometown    *string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Membership is unique per (group, user) pair. It carries no state beyond
// the relation itself.
type Membership struct {
	GroupID  string    `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"type:uuid;primaryKey"`
	JoinedAt time.Time `gorm:"autoCreateTime"`

	Group Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
}

// Invitation is a single-use join token. Once Consumed flips it never
// flips back; group deletion removes outstanding invitations outright.
type Invitation struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	GroupID    string `gorm:"type:uuid;not null;index"`
	InvitedBy  string `gorm:"type:uuid;not null"`
	Consumed   bool   `gorm:"not null;default:false"`
	ConsumedBy *string
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Group Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE"`
}
