package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// FeedService assembles a user's status feed: their own microposts plus the
// microposts of everyone they follow, newest first. Feeds are computed per
// request and never cached; a follow or unfollow is visible immediately.
type FeedService struct {
	postRepo repository.MicropostRepository
}

func NewFeedService(postRepo repository.MicropostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

func (s *FeedService) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	span, ctx := observability.NewSpan(ctx, "feed.assemble")
	defer span.End()
	span.AddAttributes(
		attribute.Int("feed.limit", limit),
		attribute.Int("feed.offset", offset),
	)

	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.Feed(ctx, userID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return posts, nil
}
