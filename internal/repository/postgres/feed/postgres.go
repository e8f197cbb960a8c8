package feed

import (
	"context"
	"errors"

	feeddomain "band-app-go/internal/domain/feed"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateArtistFeed(ctx context.Context, feed *feeddomain.ArtistFeed) error {
	return r.db.WithContext(ctx).Create(feed).Error
}

func (r *PostgresRepository) CreateUserFeed(ctx context.Context, feed *feeddomain.UserFeed) error {
	return r.db.WithContext(ctx).Create(feed).Error
}

func (r *PostgresRepository) GetArtistFeed(ctx context.Context, id string) (*feeddomain.ArtistFeed, error) {
	var found feeddomain.ArtistFeed
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feeddomain.ErrFeedNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) DeleteArtistFeed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&feeddomain.ArtistFeed{}, "id = ?", id).Error
}

func (r *PostgresRepository) ArtistFeedsByAuthor(ctx context.Context, authorID string) ([]feeddomain.ArtistFeedSummary, error) {
	var rows []feeddomain.ArtistFeedSummary
	if err := r.db.WithContext(ctx).
		Table("artist_feeds").
		Select(`artist_feeds.*, users.name as author_name,
			(SELECT COUNT(1) FROM feed_likes WHERE feed_likes.feed_id = artist_feeds.id) as like_count,
			(SELECT COUNT(1) FROM feed_comments WHERE feed_comments.feed_id = artist_feeds.id) as comment_count`).
		Joins("join users on users.id = artist_feeds.author_id").
		Where("artist_feeds.author_id = ?", authorID).
		Order("artist_feeds.created_at desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) UserFeedsByAuthor(ctx context.Context, authorID string) ([]feeddomain.UserFeedSummary, error) {
	var rows []feeddomain.UserFeedSummary
	if err := r.db.WithContext(ctx).
		Table("user_feeds").
		Select(`user_feeds.*, users.name as author_name,
			(SELECT COUNT(1) FROM feed_likes WHERE feed_likes.feed_id = user_feeds.id) as like_count,
			(SELECT COUNT(1) FROM feed_comments WHERE feed_comments.feed_id = user_feeds.id) as comment_count`).
		Joins("join users on users.id = user_feeds.author_id").
		Where("user_feeds.author_id = ?", authorID).
		Order("user_feeds.created_at desc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FeedExists checks both feed tables; comments and likes attach to either.
func (r *PostgresRepository) FeedExists(ctx context.Context, feedID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Raw(`SELECT (SELECT COUNT(1) FROM artist_feeds WHERE id = ?)
			+ (SELECT COUNT(1) FROM user_feeds WHERE id = ?)`, feedID, feedID).
		Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateComment(ctx context.Context, comment *feeddomain.FeedComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *PostgresRepository) CommentsByFeed(ctx context.Context, feedID string, offset, limit int) ([]feeddomain.FeedCommentView, error) {
	var rows []feeddomain.FeedCommentView
	if err := r.db.WithContext(ctx).
		Table("feed_comments").
		Select("feed_comments.*, users.name as author_name").
		Joins("join users on users.id = feed_comments.author_id").
		Where("feed_comments.feed_id = ?", feedID).
		Order("feed_comments.created_at desc").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
