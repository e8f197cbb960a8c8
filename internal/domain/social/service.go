package social

import (
	"context"

	"band-app-go/pkg/pagination"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FollowGroup is an idempotent edge insert. Clients retry on ambiguous
// network failures, so a duplicate follow must not surface as an error.
func (s *Service) FollowGroup(ctx context.Context, userID, groupID string) error {
	exists, err := s.repo.GroupExists(ctx, groupID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrGroupNotFound
	}
	return s.repo.FollowGroup(ctx, userID, groupID)
}

func (s *Service) UnfollowGroup(ctx context.Context, userID, groupID string) error {
	return s.repo.UnfollowGroup(ctx, userID, groupID)
}

func (s *Service) FollowUser(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return ErrSelfFollow
	}

	exists, err := s.repo.UserExists(ctx, targetID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return s.repo.FollowUser(ctx, userID, targetID)
}

func (s *Service) UnfollowUser(ctx context.Context, userID, targetID string) error {
	return s.repo.UnfollowUser(ctx, userID, targetID)
}

func (s *Service) LikeLive(ctx context.Context, userID, liveID string) error {
	return s.repo.LikeLive(ctx, userID, liveID)
}

func (s *Service) UnlikeLive(ctx context.Context, userID, liveID string) error {
	return s.repo.UnlikeLive(ctx, userID, liveID)
}

func (s *Service) LikeFeed(ctx context.Context, userID, feedID string) error {
	return s.repo.LikeFeed(ctx, userID, feedID)
}

func (s *Service) UnlikeFeed(ctx context.Context, userID, feedID string) error {
	return s.repo.UnlikeFeed(ctx, userID, feedID)
}

func (s *Service) FollowingGroups(ctx context.Context, userID string, page, per int) (pagination.Page[GroupSummary], error) {
	page, per = pagination.Normalize(page, per)
	items, err := s.repo.FollowingGroups(ctx, userID, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[GroupSummary]{}, err
	}
	return trimPage(items, per), nil
}

func (s *Service) GroupFollowers(ctx context.Context, groupID string, page, per int) (pagination.Page[UserSummary], error) {
	page, per = pagination.Normalize(page, per)
	items, err := s.repo.GroupFollowers(ctx, groupID, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[UserSummary]{}, err
	}
	return trimPage(items, per), nil
}

func (s *Service) FollowingUsers(ctx context.Context, userID string, page, per int) (pagination.Page[UserSummary], error) {
	page, per = pagination.Normalize(page, per)
	items, err := s.repo.FollowingUsers(ctx, userID, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[UserSummary]{}, err
	}
	return trimPage(items, per), nil
}

func (s *Service) UserFollowers(ctx context.Context, userID string, page, per int) (pagination.Page[UserSummary], error) {
	page, per = pagination.Normalize(page, per)
	items, err := s.repo.UserFollowers(ctx, userID, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[UserSummary]{}, err
	}
	return trimPage(items, per), nil
}

func trimPage[T any](items []T, per int) pagination.Page[T] {
	hasMore := len(items) > per
	if hasMore {
		items = items[:per]
	}
	if items == nil {
		items = []T{}
	}
	return pagination.Page[T]{Items: items, HasMore: hasMore}
}
