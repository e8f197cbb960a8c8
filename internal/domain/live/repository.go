package live

import (
	"context"
	"time"
)

type Repository interface {
	// CreateLive persists the live and its performer rows as one unit.
	CreateLive(ctx context.Context, live *Live, performerGroupIDs []string) error
	GetLive(ctx context.Context, id string) (*Live, error)
	ListLives(ctx context.Context, offset, limit int) ([]Live, error)
	// UpcomingByGroups returns lives hosted by any of the given groups that
	// start at or after now, soonest first.
	UpcomingByGroups(ctx context.Context, groupIDs []string, now time.Time) ([]Live, error)
	PerformerGroupIDs(ctx context.Context, liveID string) ([]string, error)
}

// MembershipChecker is the slice of the group domain this package needs.
type MembershipChecker interface {
	IsMember(ctx context.Context, groupID, userID string) (bool, error)
}
