package repository

import (
	"context"
	"errors"
	"time"

	"murmur/internal/models"
	"murmur/internal/observability"

	"gorm.io/gorm"
)

// MicropostRepository defines persistence operations for microposts.
type MicropostRepository interface {
	Create(ctx context.Context, post *models.Micropost) error
	GetByID(ctx context.Context, id uint) (*models.Micropost, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
}

type micropostRepository struct {
	db *gorm.DB
}

// NewMicropostRepository returns a new MicropostRepository implementation.
func NewMicropostRepository(db *gorm.DB) MicropostRepository {
	return &micropostRepository{db: db}
}

func (r *micropostRepository) Create(ctx context.Context, post *models.Micropost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *micropostRepository) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	var post models.Micropost
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Micropost", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *micropostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *micropostRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Micropost{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *micropostRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Micropost{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Feed returns the user's own posts plus those of everyone they follow,
// newest first. The followed set is resolved in a subquery rather than
// materialized application-side.
func (r *micropostRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	start := time.Now()
	defer func() {
		observability.FeedQueryLatency.Observe(time.Since(start).Seconds())
	}()

	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? OR user_id IN (SELECT followed_id FROM relationships WHERE follower_id = ?)", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
