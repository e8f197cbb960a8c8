package user

import (
	"context"
	"errors"

	domain "band-app-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var found domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) GetUserByProvider(ctx context.Context, providerID string) (*domain.User, error) {
	var found domain.User
	if err := r.db.WithContext(ctx).Where("provider_id = ?", providerID).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
