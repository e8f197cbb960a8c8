package live

import (
	"context"
	"errors"
	"time"

	livedomain "band-app-go/internal/domain/live"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateLive(ctx context.Context, live *livedomain.Live, performerGroupIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(live).Error; err != nil {
			return err
		}
		for _, groupID := range performerGroupIDs {
			performer := livedomain.Performer{LiveID: live.ID, GroupID: groupID}
			if err := tx.Create(&performer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresRepository) GetLive(ctx context.Context, id string) (*livedomain.Live, error) {
	var found livedomain.Live
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, livedomain.ErrLiveNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) ListLives(ctx context.Context, offset, limit int) ([]livedomain.Live, error) {
	var lives []livedomain.Live
	if err := r.db.WithContext(ctx).
		Order("start_at asc").
		Offset(offset).
		Limit(limit).
		Find(&lives).Error; err != nil {
		return nil, err
	}
	return lives, nil
}

func (r *PostgresRepository) UpcomingByGroups(ctx context.Context, groupIDs []string, now time.Time) ([]livedomain.Live, error) {
	if len(groupIDs) == 0 {
		return []livedomain.Live{}, nil
	}

	var lives []livedomain.Live
	if err := r.db.WithContext(ctx).
		Where("host_group_id IN ? AND start_at >= ?", groupIDs, now).
		Order("start_at asc").
		Find(&lives).Error; err != nil {
		return nil, err
	}
	return lives, nil
}

func (r *PostgresRepository) PerformerGroupIDs(ctx context.Context, liveID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&livedomain.Performer{}).
		Where("live_id = ?", liveID).
		Pluck("group_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
