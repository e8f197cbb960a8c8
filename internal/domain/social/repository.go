package social

import "context"

type Repository interface {
	// Edge writes are idempotent: inserting an existing edge and deleting a
	// missing one both succeed silently.
	FollowGroup(ctx context.Context, userID, groupID string) error
	UnfollowGroup(ctx context.Context, userID, groupID string) error
	FollowUser(ctx context.Context, userID, targetID string) error
	UnfollowUser(ctx context.Context, userID, targetID string) error
	LikeLive(ctx context.Context, userID, liveID string) error
	UnlikeLive(ctx context.Context, userID, liveID string) error
	LikeFeed(ctx context.Context, userID, feedID string) error
	UnlikeFeed(ctx context.Context, userID, feedID string) error

	GroupExists(ctx context.Context, groupID string) (bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)

	FollowingGroups(ctx context.Context, userID string, offset, limit int) ([]GroupSummary, error)
	GroupFollowers(ctx context.Context, groupID string, offset, limit int) ([]UserSummary, error)
	FollowingUsers(ctx context.Context, userID string, offset, limit int) ([]UserSummary, error)
	UserFollowers(ctx context.Context, userID string, offset, limit int) ([]UserSummary, error)

	FollowingGroupIDs(ctx context.Context, userID string) ([]string, error)
	FollowingUserIDs(ctx context.Context, userID string) ([]string, error)
	// LikedLives reports which of the given lives the user has liked.
	LikedLives(ctx context.Context, userID string, liveIDs []string) (map[string]bool, error)
}
