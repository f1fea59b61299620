package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"
)

type RelationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{relRepo: relRepo, userRepo: userRepo}
}

// Follow makes follower follow followed. Following yourself is rejected;
// following someone you already follow succeeds without a new edge.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		verrs := models.NewValidationErrors()
		verrs.Add("followed_id", "cannot follow yourself")
		return verrs
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}
	if err := s.relRepo.Follow(ctx, followerID, followedID); err != nil {
		return err
	}
	observability.FollowEventsTotal.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the edge. Unfollowing someone you don't follow succeeds.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}
	if err := s.relRepo.Unfollow(ctx, followerID, followedID); err != nil {
		return err
	}
	observability.FollowEventsTotal.WithLabelValues("unfollow").Inc()
	return nil
}

func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.relRepo.IsFollowing(ctx, followerID, followedID)
}

func (s *RelationshipService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.FollowedUsers(ctx, userID)
}

func (s *RelationshipService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.Followers(ctx, userID)
}

// Counts returns how many users the given user follows and is followed by.
func (s *RelationshipService) Counts(ctx context.Context, userID uint) (following int64, followers int64, err error) {
	following, err = s.relRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	followers, err = s.relRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return following, followers, nil
}
