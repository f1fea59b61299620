package repository

import (
	"context"
	"errors"

	"murmur/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository defines the interface for follower graph operations
type RelationshipRepository interface {
	Follow(ctx context.Context, followerID, followedID uint) error
	Unfollow(ctx context.Context, followerID, followedID uint) error
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	FollowedUsers(ctx context.Context, followerID uint) ([]models.User, error)
	Followers(ctx context.Context, followedID uint) ([]models.User, error)
	CountFollowing(ctx context.Context, followerID uint) (int64, error)
	CountFollowers(ctx context.Context, followedID uint) (int64, error)
}

// relationshipRepository implements RelationshipRepository
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// Follow records follower -> followed. Following someone twice is a no-op:
// the pair carries a unique index, and a duplicate insert is swallowed.
func (r *relationshipRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	rel := models.Relationship{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.WithContext(ctx).Create(&rel).Error; err != nil {
		if models.IsUniqueViolation(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the edge if present. Removing a missing edge is a no-op.
func (r *relationshipRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Relationship{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *relationshipRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var rel models.Relationship
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		First(&rel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, models.NewInternalError(err)
	}
	return true, nil
}

func (r *relationshipRepository) FollowedUsers(ctx context.Context, followerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.followed_id").
		Where("r.follower_id = ?", followerID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.follower_id").
		Where("r.followed_id = ?", followedID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) CountFollowing(ctx context.Context, followerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *relationshipRepository) CountFollowers(ctx context.Context, followedID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("followed_id = ?", followedID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
