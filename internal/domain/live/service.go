package live

import (
	"context"
	"fmt"
	"strings"
	"time"

	userdomain "band-app-go/internal/domain/user"
	"band-app-go/pkg/pagination"
	"github.com/google/uuid"
)

type Service struct {
	repo        Repository
	memberships MembershipChecker
	now         func() time.Time
}

func NewService(repo Repository, memberships MembershipChecker) *Service {
	return &Service{repo: repo, memberships: memberships, now: time.Now}
}

type CreateLiveInput struct {
	Title             string
	Style             string
	HostGroupID       string
	ArtworkURL        *string
	OpenAt            *time.Time
	StartAt           time.Time
	EndAt             time.Time
	PerformerGroupIDs []string
}

// CreateLive authorizes then delegates. The role check runs before the
// membership check, and nothing is written unless both pass, so a fan who is
// also a non-member always sees the role error.
func (s *Service) CreateLive(ctx context.Context, actor userdomain.User, input CreateLiveInput) (*Live, error) {
	if !actor.IsArtist() {
		return nil, ErrFanCannotCreate
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Style != StyleOneman && input.Style != StyleBattle {
		return nil, ErrInvalidStyle
	}
	if input.HostGroupID == "" {
		return nil, fmt.Errorf("host group id is required")
	}
	if input.StartAt.IsZero() || input.EndAt.IsZero() || input.EndAt.Before(input.StartAt) {
		return nil, ErrInvalidSchedule
	}

	isMember, err := s.memberships.IsMember(ctx, input.HostGroupID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotHostGroupMember
	}

	created := Live{
		ID:          uuid.NewString(),
		Title:       title,
		Style:       input.Style,
		HostGroupID: input.HostGroupID,
		AuthorID:    actor.ID,
		ArtworkURL:  input.ArtworkURL,
		OpenAt:      input.OpenAt,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
	}

	performers := dedupeIDs(append([]string{input.HostGroupID}, input.PerformerGroupIDs...))
	if err := s.repo.CreateLive(ctx, &created, performers); err != nil {
		return nil, err
	}

	return &created, nil
}

type LiveDetail struct {
	Live
	PerformerGroupIDs []string
}

func (s *Service) GetLive(ctx context.Context, liveID string) (*LiveDetail, error) {
	found, err := s.repo.GetLive(ctx, liveID)
	if err != nil {
		return nil, err
	}

	performers, err := s.repo.PerformerGroupIDs(ctx, liveID)
	if err != nil {
		return nil, err
	}

	return &LiveDetail{Live: *found, PerformerGroupIDs: performers}, nil
}

func (s *Service) ListLives(ctx context.Context, page, per int) (pagination.Page[Live], error) {
	page, per = pagination.Normalize(page, per)

	lives, err := s.repo.ListLives(ctx, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[Live]{}, err
	}

	hasMore := len(lives) > per
	if hasMore {
		lives = lives[:per]
	}
	if lives == nil {
		lives = []Live{}
	}
	return pagination.Page[Live]{Items: lives, HasMore: hasMore}, nil
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
