package feed

import (
	"context"
	"time"

	livedomain "band-app-go/internal/domain/live"
)

type Repository interface {
	CreateArtistFeed(ctx context.Context, feed *ArtistFeed) error
	CreateUserFeed(ctx context.Context, feed *UserFeed) error
	GetArtistFeed(ctx context.Context, id string) (*ArtistFeed, error)
	DeleteArtistFeed(ctx context.Context, id string) error
	ArtistFeedsByAuthor(ctx context.Context, authorID string) ([]ArtistFeedSummary, error)
	UserFeedsByAuthor(ctx context.Context, authorID string) ([]UserFeedSummary, error)

	// FeedExists covers artist and user feeds alike.
	FeedExists(ctx context.Context, feedID string) (bool, error)
	CreateComment(ctx context.Context, comment *FeedComment) error
	CommentsByFeed(ctx context.Context, feedID string, offset, limit int) ([]FeedCommentView, error)
}

// SocialGraph, GroupDirectory and LiveLister are the slices of the other
// domains the aggregator fans out to. The concrete repositories satisfy them
// directly.

type SocialGraph interface {
	FollowingGroupIDs(ctx context.Context, userID string) ([]string, error)
	FollowingUserIDs(ctx context.Context, userID string) ([]string, error)
	LikedLives(ctx context.Context, userID string, liveIDs []string) (map[string]bool, error)
}

type GroupDirectory interface {
	GroupExists(ctx context.Context, groupID string) (bool, error)
	MemberIDs(ctx context.Context, groupID string) ([]string, error)
}

type LiveLister interface {
	UpcomingByGroups(ctx context.Context, groupIDs []string, now time.Time) ([]livedomain.Live, error)
}
