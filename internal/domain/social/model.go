package social

import "time"

// Follow and like relations are sets: inserting an existing edge or removing
// a missing one is a no-op, never an error.

type GroupFollow struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	GroupID   string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type UserFollow struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	TargetID  string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type LiveLike struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	LiveID    string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type FeedLike struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	FeedID    string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// GroupSummary and UserSummary are the projections follower listings return.

type GroupSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ArtworkURL *string `json:"artworkUrl"`
}

type UserSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Role         string  `json:"role"`
}
