package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SignupInput struct {
	Name         string
	Biography    *string
	ThumbnailURL *string
	Role         string
	Part         *string
}

func (s *Service) Signup(ctx context.Context, providerID string, input SignupInput) (*User, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	switch input.Role {
	case RoleFan:
	case RoleArtist:
		if input.Part == nil || strings.TrimSpace(*input.Part) == "" {
			return nil, ErrArtistPartMissing
		}
	default:
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetUserByProvider(ctx, providerID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	created := User{
		ID:           uuid.NewString(),
		ProviderID:   providerID,
		Name:         name,
		Biography:    input.Biography,
		ThumbnailURL: input.ThumbnailURL,
		Role:         input.Role,
		Part:         input.Part,
	}
	if created.Role == RoleFan {
		created.Part = nil
	}

	if err := s.repo.CreateUser(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type EditUserInput struct {
	Name         string
	Biography    *string
	ThumbnailURL *string
	Part         *string
}

// EditUser updates the mutable profile fields. Role never changes here.
func (s *Service) EditUser(ctx context.Context, userID string, input EditUserInput) (*User, error) {
	current, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		current.Name = name
	}
	if input.Biography != nil {
		current.Biography = input.Biography
	}
	if input.ThumbnailURL != nil {
		current.ThumbnailURL = input.ThumbnailURL
	}
	if input.Part != nil && current.IsArtist() {
		current.Part = input.Part
	}

	if err := s.repo.UpdateUser(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) GetUserByProvider(ctx context.Context, providerID string) (*User, error) {
	return s.repo.GetUserByProvider(ctx, providerID)
}
