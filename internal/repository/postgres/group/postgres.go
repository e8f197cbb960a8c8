package group

import (
	"context"
	"errors"

	groupdomain "band-app-go/internal/domain/group"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(groupdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *groupdomain.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *PostgresRepository) GetGroup(ctx context.Context, id string) (*groupdomain.Group, error) {
	var found groupdomain.Group
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupdomain.ErrGroupNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) GroupExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&groupdomain.Group{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ListGroups(ctx context.Context, offset, limit int) ([]groupdomain.Group, error) {
	var groups []groupdomain.Group
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PostgresRepository) UpdateGroup(ctx context.Context, group *groupdomain.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *PostgresRepository) DeleteGroup(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&groupdomain.Group{}, "id = ?", id).Error
}

func (r *PostgresRepository) AddMember(ctx context.Context, member *groupdomain.Membership) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) RemoveMember(ctx context.Context, groupID, userID string) error {
	return r.db.WithContext(ctx).Delete(&groupdomain.Membership{}, "group_id = ? AND user_id = ?", groupID, userID).Error
}

func (r *PostgresRepository) RemoveMembersByGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&groupdomain.Membership{}).Error
}

func (r *PostgresRepository) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&groupdomain.Membership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) MemberIDs(ctx context.Context, groupID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&groupdomain.Membership{}).
		Where("group_id = ?", groupID).
		Order("joined_at asc").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) GroupsByMember(ctx context.Context, userID string) ([]groupdomain.Group, error) {
	var groups []groupdomain.Group
	if err := r.db.WithContext(ctx).
		Table("groups").
		Joins("join memberships on memberships.group_id = groups.id").
		Where("memberships.user_id = ?", userID).
		Order("memberships.joined_at asc").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PostgresRepository) CreateInvitation(ctx context.Context, invitation *groupdomain.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *PostgresRepository) GetInvitation(ctx context.Context, id string) (*groupdomain.Invitation, error) {
	var found groupdomain.Invitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupdomain.ErrInvitationNotFound
		}
		return nil, err
	}
	return &found, nil
}

// ConsumeInvitation flips the consumed flag with a guard on the previous
// state; the rows-affected count tells whether this caller won the race.
func (r *PostgresRepository) ConsumeInvitation(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&groupdomain.Invitation{}).
		Where("id = ? AND consumed = false", id).
		Updates(map[string]interface{}{
			"consumed":    true,
			"consumed_by": userID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) RemoveInvitationsByGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&groupdomain.Invitation{}).Error
}
