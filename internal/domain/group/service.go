package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"band-app-go/pkg/pagination"
	"github.com/google/uuid"
)

const defaultCacheTTL = time.Minute

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, noopCache{}, defaultCacheTTL)
}

func NewServiceWithCache(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{repo: repo, cache: cache, cacheTTL: ttl}
}

type CreateGroupInput struct {
	Name        string
	EnglishName *string
	Biography   *string
	Since       *time.Time
	ArtworkURL  *string
	Hometown    *string
}

// CreateGroup creates the group and its founding membership as one unit.
func (s *Service) CreateGroup(ctx context.Context, userID string, input CreateGroupInput) (*Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var result Group
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		created := Group{
			ID:          uuid.NewString(),
			Name:        name,
			EnglishName: input.EnglishName,
			Biography:   input.Biography,
			Since:       input.Since,
			ArtworkURL:  input.ArtworkURL,
			Hometown:    input.Hometown,
		}
		if err := tx.CreateGroup(ctx, &created); err != nil {
			return err
		}

		member := Membership{GroupID: created.ID, UserID: userID}
		if err := tx.AddMember(ctx, &member); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

type EditGroupInput struct {
	Name        string
	EnglishName *string
	Biography   *string
	Since       *time.Time
	ArtworkURL  *string
	Hometown    *string
}

func (s *Service) EditGroup(ctx context.Context, groupID, userID string, input EditGroupInput) (*Group, error) {
	current, err := s.repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotAMember
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		current.Name = name
	}
	if input.EnglishName != nil {
		current.EnglishName = input.EnglishName
	}
	if input.Biography != nil {
		current.Biography = input.Biography
	}
	if input.Since != nil {
		current.Since = input.Since
	}
	if input.ArtworkURL != nil {
		current.ArtworkURL = input.ArtworkURL
	}
	if input.Hometown != nil {
		current.Hometown = input.Hometown
	}

	if err := s.repo.UpdateGroup(ctx, current); err != nil {
		return nil, err
	}

	s.cache.Delete(groupID)
	return current, nil
}

// DeleteGroup removes the group and everything hanging off it: memberships,
// outstanding invitations, and (at the storage layer) follow edges, hosted
// lives and performer rows. A second delete of the same id fails
// ErrGroupNotFound.
func (s *Service) DeleteGroup(ctx context.Context, groupID, userID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetGroup(ctx, groupID); err != nil {
			return err
		}

		isMember, err := tx.IsMember(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if !isMember {
			return ErrNotAMember
		}

		if err := tx.RemoveMembersByGroup(ctx, groupID); err != nil {
			return err
		}
		if err := tx.RemoveInvitationsByGroup(ctx, groupID); err != nil {
			return err
		}
		return tx.DeleteGroup(ctx, groupID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

// Invite issues a fresh single-use invitation. Only current members may
// invite.
func (s *Service) Invite(ctx context.Context, groupID, userID string) (*Invitation, error) {
	if _, err := s.repo.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	isMember, err := s.repo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotAMember
	}

	invitation := Invitation{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		InvitedBy: userID,
	}
	if err := s.repo.CreateInvitation(ctx, &invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Join consumes the invitation and creates the membership atomically. At most
// one join ever succeeds per invitation id; every later attempt, including a
// replay by the successful invitee, fails ErrInvitationConsumed.
func (s *Service) Join(ctx context.Context, invitationID, userID string) (*Membership, error) {
	var result Membership
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		invitation, err := tx.GetInvitation(ctx, invitationID)
		if err != nil {
			return err
		}
		if invitation.Consumed {
			return ErrInvitationConsumed
		}

		isMember, err := tx.IsMember(ctx, invitation.GroupID, userID)
		if err != nil {
			return err
		}
		if isMember {
			return ErrAlreadyMember
		}

		won, err := tx.ConsumeInvitation(ctx, invitationID, userID)
		if err != nil {
			return err
		}
		if !won {
			return ErrInvitationConsumed
		}

		member := Membership{GroupID: invitation.GroupID, UserID: userID}
		if err := tx.AddMember(ctx, &member); err != nil {
			return err
		}

		result = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

type GroupDetail struct {
	Group
	IsMember bool
}

func (s *Service) GetGroup(ctx context.Context, groupID, viewerID string) (*GroupDetail, error) {
	found, ok := s.cache.Get(groupID)
	if !ok {
		var err error
		found, err = s.repo.GetGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		s.cache.Set(groupID, found, s.cacheTTL)
	}

	isMember, err := s.repo.IsMember(ctx, groupID, viewerID)
	if err != nil {
		return nil, err
	}

	return &GroupDetail{Group: *found, IsMember: isMember}, nil
}

func (s *Service) ListGroups(ctx context.Context, page, per int) (pagination.Page[Group], error) {
	page, per = pagination.Normalize(page, per)

	// Fetch one extra row to learn whether another page exists.
	groups, err := s.repo.ListGroups(ctx, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[Group]{}, err
	}

	hasMore := len(groups) > per
	if hasMore {
		groups = groups[:per]
	}
	if groups == nil {
		groups = []Group{}
	}
	return pagination.Page[Group]{Items: groups, HasMore: hasMore}, nil
}

// Memberships lists the groups the user currently belongs to.
func (s *Service) Memberships(ctx context.Context, userID string) ([]Group, error) {
	return s.repo.GroupsByMember(ctx, userID)
}

func (s *Service) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	return s.repo.IsMember(ctx, groupID, userID)
}
