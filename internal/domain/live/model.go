package live

import "time"

// Style of a live: a single performer or a full line-up of groups.
const (
	StyleOneman = "oneman"
	StyleBattle = "battle"
)

// Live is immutable once created.
type Live struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null"`
	Style       string `gorm:"type:varchar(16);not null"`
	HostGroupID string `gorm:"type:uuid;not null;index"`
	AuthorID    string `gorm:"type:uuid;not null"`
	ArtworkURL  *string
	OpenAt      *time.Time
	StartAt     time.Time `gorm:"not null;index"`
	EndAt       time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Performer links a live to one of the groups on its bill.
type Performer struct {
	LiveID  string `gorm:"type:uuid;primaryKey"`
	GroupID string `gorm:"type:uuid;primaryKey"`

	Live Live `gorm:"foreignKey:LiveID;references:ID;constraint:OnDelete:CASCADE"`
}
