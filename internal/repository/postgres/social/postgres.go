package social

import (
	"context"

	socialdomain "band-app-go/internal/domain/social"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Edge inserts use ON CONFLICT DO NOTHING so retried follows and likes stay
// idempotent at the storage layer.

func (r *PostgresRepository) FollowGroup(ctx context.Context, userID, groupID string) error {
	edge := socialdomain.GroupFollow{UserID: userID, GroupID: groupID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

func (r *PostgresRepository) UnfollowGroup(ctx context.Context, userID, groupID string) error {
	return r.db.WithContext(ctx).Delete(&socialdomain.GroupFollow{}, "user_id = ? AND group_id = ?", userID, groupID).Error
}

func (r *PostgresRepository) FollowUser(ctx context.Context, userID, targetID string) error {
	edge := socialdomain.UserFollow{UserID: userID, TargetID: targetID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

func (r *PostgresRepository) UnfollowUser(ctx context.Context, userID, targetID string) error {
	return r.db.WithContext(ctx).Delete(&socialdomain.UserFollow{}, "user_id = ? AND target_id = ?", userID, targetID).Error
}

func (r *PostgresRepository) LikeLive(ctx context.Context, userID, liveID string) error {
	edge := socialdomain.LiveLike{UserID: userID, LiveID: liveID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

func (r *PostgresRepository) UnlikeLive(ctx context.Context, userID, liveID string) error {
	return r.db.WithContext(ctx).Delete(&socialdomain.LiveLike{}, "user_id = ? AND live_id = ?", userID, liveID).Error
}

func (r *PostgresRepository) LikeFeed(ctx context.Context, userID, feedID string) error {
	edge := socialdomain.FeedLike{UserID: userID, FeedID: feedID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

func (r *PostgresRepository) UnlikeFeed(ctx context.Context, userID, feedID string) error {
	return r.db.WithContext(ctx).Delete(&socialdomain.FeedLike{}, "user_id = ? AND feed_id = ?", userID, feedID).Error
}

func (r *PostgresRepository) GroupExists(ctx context.Context, groupID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("groups").Where("id = ?", groupID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) FollowingGroups(ctx context.Context, userID string, offset, limit int) ([]socialdomain.GroupSummary, error) {
	var rows []socialdomain.GroupSummary
	if err := r.db.WithContext(ctx).
		Table("group_follows").
		Select("groups.id, groups.name, groups.artwork_url").
		Joins("join groups on groups.id = group_follows.group_id").
		Where("group_follows.user_id = ?", userID).
		Order("group_follows.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) GroupFollowers(ctx context.Context, groupID string, offset, limit int) ([]socialdomain.UserSummary, error) {
	var rows []socialdomain.UserSummary
	if err := r.db.WithContext(ctx).
		Table("group_follows").
		Select("users.id, users.name, users.thumbnail_url, users.role").
		Joins("join users on users.id = group_follows.user_id").
		Where("group_follows.group_id = ?", groupID).
		Order("group_follows.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) FollowingUsers(ctx context.Context, userID string, offset, limit int) ([]socialdomain.UserSummary, error) {
	var rows []socialdomain.UserSummary
	if err := r.db.WithContext(ctx).
		Table("user_follows").
		Select("users.id, users.name, users.thumbnail_url, users.role").
		Joins("join users on users.id = user_follows.target_id").
		Where("user_follows.user_id = ?", userID).
		Order("user_follows.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) UserFollowers(ctx context.Context, userID string, offset, limit int) ([]socialdomain.UserSummary, error) {
	var rows []socialdomain.UserSummary
	if err := r.db.WithContext(ctx).
		Table("user_follows").
		Select("users.id, users.name, users.thumbnail_url, users.role").
		Joins("join users on users.id = user_follows.user_id").
		Where("user_follows.target_id = ?", userID).
		Order("user_follows.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) FollowingGroupIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&socialdomain.GroupFollow{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) FollowingUserIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&socialdomain.UserFollow{}).
		Where("user_id = ?", userID).
		Pluck("target_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) LikedLives(ctx context.Context, userID string, liveIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(liveIDs))
	if len(liveIDs) == 0 {
		return liked, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).Model(&socialdomain.LiveLike{}).
		Where("user_id = ? AND live_id IN ?", userID, liveIDs).
		Pluck("live_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
