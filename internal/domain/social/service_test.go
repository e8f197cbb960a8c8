package social

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type edge struct {
	from string
	to   string
}

type fakeSocialRepo struct {
	groups map[string]GroupSummary
	users  map[string]UserSummary

	groupFollows map[edge]struct{}
	userFollows  map[edge]struct{}
	liveLikes    map[edge]struct{}
	feedLikes    map[edge]struct{}
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{
		groups:       make(map[string]GroupSummary),
		users:        make(map[string]UserSummary),
		groupFollows: make(map[edge]struct{}),
		userFollows:  make(map[edge]struct{}),
		liveLikes:    make(map[edge]struct{}),
		feedLikes:    make(map[edge]struct{}),
	}
}

func (r *fakeSocialRepo) FollowGroup(ctx context.Context, userID, groupID string) error {
	r.groupFollows[edge{userID, groupID}] = struct{}{}
	return nil
}

func (r *fakeSocialRepo) UnfollowGroup(ctx context.Context, userID, groupID string) error {
	delete(r.groupFollows, edge{userID, groupID})
	return nil
}

func (r *fakeSocialRepo) FollowUser(ctx context.Context, userID, targetID string) error {
	r.userFollows[edge{userID, targetID}] = struct{}{}
	return nil
}

func (r *fakeSocialRepo) UnfollowUser(ctx context.Context, userID, targetID string) error {
	delete(r.userFollows, edge{userID, targetID})
	return nil
}

func (r *fakeSocialRepo) LikeLive(ctx context.Context, userID, liveID string) error {
	r.liveLikes[edge{userID, liveID}] = struct{}{}
	return nil
}

func (r *fakeSocialRepo) UnlikeLive(ctx context.Context, userID, liveID string) error {
	delete(r.liveLikes, edge{userID, liveID})
	return nil
}

func (r *fakeSocialRepo) LikeFeed(ctx context.Context, userID, feedID string) error {
	r.feedLikes[edge{userID, feedID}] = struct{}{}
	return nil
}

func (r *fakeSocialRepo) UnlikeFeed(ctx context.Context, userID, feedID string) error {
	delete(r.feedLikes, edge{userID, feedID})
	return nil
}

func (r *fakeSocialRepo) GroupExists(ctx context.Context, groupID string) (bool, error) {
	_, ok := r.groups[groupID]
	return ok, nil
}

func (r *fakeSocialRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	_, ok := r.users[userID]
	return ok, nil
}

func (r *fakeSocialRepo) FollowingGroups(ctx context.Context, userID string, offset, limit int) ([]GroupSummary, error) {
	result := make([]GroupSummary, 0)
	for e := range r.groupFollows {
		if e.from == userID {
			result = append(result, r.groups[e.to])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return window(result, offset, limit), nil
}

func (r *fakeSocialRepo) GroupFollowers(ctx context.Context, groupID string, offset, limit int) ([]UserSummary, error) {
	result := make([]UserSummary, 0)
	for e := range r.groupFollows {
		if e.to == groupID {
			result = append(result, r.users[e.from])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return window(result, offset, limit), nil
}

func (r *fakeSocialRepo) FollowingUsers(ctx context.Context, userID string, offset, limit int) ([]UserSummary, error) {
	result := make([]UserSummary, 0)
	for e := range r.userFollows {
		if e.from == userID {
			result = append(result, r.users[e.to])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return window(result, offset, limit), nil
}

func (r *fakeSocialRepo) UserFollowers(ctx context.Context, userID string, offset, limit int) ([]UserSummary, error) {
	result := make([]UserSummary, 0)
	for e := range r.userFollows {
		if e.to == userID {
			result = append(result, r.users[e.from])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return window(result, offset, limit), nil
}

func (r *fakeSocialRepo) FollowingGroupIDs(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	for e := range r.groupFollows {
		if e.from == userID {
			ids = append(ids, e.to)
		}
	}
	return ids, nil
}

func (r *fakeSocialRepo) FollowingUserIDs(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	for e := range r.userFollows {
		if e.from == userID {
			ids = append(ids, e.to)
		}
	}
	return ids, nil
}

func (r *fakeSocialRepo) LikedLives(ctx context.Context, userID string, liveIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(liveIDs))
	for _, id := range liveIDs {
		if _, ok := r.liveLikes[edge{userID, id}]; ok {
			result[id] = true
		}
	}
	return result, nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func TestFollowGroupIdempotent(t *testing.T) {
	repo := newFakeSocialRepo()
	repo.groups["grp-1"] = GroupSummary{ID: "grp-1", Name: "Band"}
	svc := NewService(repo)

	if err := svc.FollowGroup(context.Background(), "user-1", "grp-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.FollowGroup(context.Background(), "user-1", "grp-1"); err != nil {
		t.Fatalf("repeat follow must succeed, got %v", err)
	}
	if len(repo.groupFollows) != 1 {
		t.Fatalf("expected a single edge, got %d", len(repo.groupFollows))
	}
}

func TestFollowGroupMissingGroup(t *testing.T) {
	svc := NewService(newFakeSocialRepo())
	if err := svc.FollowGroup(context.Background(), "user-1", "missing"); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestFollowTwiceUnfollowOnceLeavesNoEdge(t *testing.T) {
	repo := newFakeSocialRepo()
	repo.groups["grp-1"] = GroupSummary{ID: "grp-1", Name: "Band"}
	svc := NewService(repo)

	ctx := context.Background()
	if err := svc.FollowGroup(ctx, "user-1", "grp-1"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := svc.FollowGroup(ctx, "user-1", "grp-1"); err != nil {
		t.Fatalf("repeat follow failed: %v", err)
	}
	if err := svc.UnfollowGroup(ctx, "user-1", "grp-1"); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if len(repo.groupFollows) != 0 {
		t.Fatalf("expected no edge after one unfollow, got %d", len(repo.groupFollows))
	}
	// Unfollowing again stays silent.
	if err := svc.UnfollowGroup(ctx, "user-1", "grp-1"); err != nil {
		t.Fatalf("repeat unfollow must succeed, got %v", err)
	}
}

func TestFollowUserSelfRejected(t *testing.T) {
	repo := newFakeSocialRepo()
	repo.users["user-1"] = UserSummary{ID: "user-1", Name: "Me"}
	svc := NewService(repo)

	if err := svc.FollowUser(context.Background(), "user-1", "user-1"); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
	if len(repo.userFollows) != 0 {
		t.Fatalf("self follow must not create an edge")
	}
}

func TestFollowUserMissingTarget(t *testing.T) {
	svc := NewService(newFakeSocialRepo())
	if err := svc.FollowUser(context.Background(), "user-1", "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLikeLiveIdempotent(t *testing.T) {
	repo := newFakeSocialRepo()
	svc := NewService(repo)

	ctx := context.Background()
	if err := svc.LikeLive(ctx, "user-1", "live-1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := svc.LikeLive(ctx, "user-1", "live-1"); err != nil {
		t.Fatalf("repeat like failed: %v", err)
	}
	if len(repo.liveLikes) != 1 {
		t.Fatalf("expected a single like edge, got %d", len(repo.liveLikes))
	}
	if err := svc.UnlikeLive(ctx, "user-1", "live-1"); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if err := svc.UnlikeLive(ctx, "user-1", "live-1"); err != nil {
		t.Fatalf("repeat unlike must succeed, got %v", err)
	}
}

func TestFollowingGroupsPaged(t *testing.T) {
	repo := newFakeSocialRepo()
	for _, id := range []string{"grp-1", "grp-2", "grp-3"} {
		repo.groups[id] = GroupSummary{ID: id, Name: id}
		repo.groupFollows[edge{"user-1", id}] = struct{}{}
	}
	svc := NewService(repo)

	page, err := svc.FollowingGroups(context.Background(), "user-1", 1, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 2 || !page.HasMore {
		t.Fatalf("expected 2 items with more, got %d hasMore=%v", len(page.Items), page.HasMore)
	}

	last, err := svc.FollowingGroups(context.Background(), "user-1", 2, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(last.Items) != 1 || last.HasMore {
		t.Fatalf("expected final page of 1, got %d hasMore=%v", len(last.Items), last.HasMore)
	}
}

func TestGroupFollowersEmptyPage(t *testing.T) {
	svc := NewService(newFakeSocialRepo())
	page, err := svc.GroupFollowers(context.Background(), "grp-1", 3, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 || page.HasMore {
		t.Fatalf("expected empty non-nil page, got %+v", page)
	}
}

func TestUserFollowersListsFollowers(t *testing.T) {
	repo := newFakeSocialRepo()
	repo.users["user-1"] = UserSummary{ID: "user-1", Name: "A"}
	repo.users["user-2"] = UserSummary{ID: "user-2", Name: "B"}
	repo.users["user-3"] = UserSummary{ID: "user-3", Name: "C"}
	repo.userFollows[edge{"user-2", "user-1"}] = struct{}{}
	repo.userFollows[edge{"user-3", "user-1"}] = struct{}{}
	svc := NewService(repo)

	page, err := svc.UserFollowers(context.Background(), "user-1", 1, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Items) != 2 || page.HasMore {
		t.Fatalf("expected both followers, got %d hasMore=%v", len(page.Items), page.HasMore)
	}
}
