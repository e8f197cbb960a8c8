package feed

import (
	"time"

	livedomain "band-app-go/internal/domain/live"
)

// ArtistFeed is a post by an artist, surfaced to followers of any group the
// artist plays in.
type ArtistFeed struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	AuthorID     string  `gorm:"type:uuid;not null;index"`
	Text         string  `gorm:"not null"`
	OGPURL       *string `gorm:"column:ogp_url"`
	ThumbnailURL *string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// UserFeed is a post by any user, surfaced to their followers.
type UserFeed struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	AuthorID     string  `gorm:"type:uuid;not null;index"`
	Text         string  `gorm:"not null"`
	OGPURL       *string `gorm:"column:ogp_url"`
	ThumbnailURL *string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// Summaries carry read-time aggregates. Counts are derived on read and never
// stored on the feed rows.

type ArtistFeedSummary struct {
	ArtistFeed
	AuthorName   string `json:"authorName"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
}

type UserFeedSummary struct {
	UserFeed
	AuthorName   string `json:"authorName"`
	LikeCount    int    `json:"likeCount"`
	CommentCount int    `json:"commentCount"`
}

// FeedComment is a comment on a feed item by any user. The feed id is not
// typed to one feed table; comments attach to artist and user feeds alike.
type FeedComment struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	FeedID    string    `gorm:"type:uuid;not null;index"`
	AuthorID  string    `gorm:"type:uuid;not null"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type FeedCommentView struct {
	FeedComment
	AuthorName string `json:"authorName"`
}

// LiveSummary annotates a live with the viewer's like state, computed from
// the like edge set at read time.
type LiveSummary struct {
	livedomain.Live
	IsLiked bool `json:"isLiked"`
}
