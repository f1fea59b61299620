package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"
	"murmur/internal/validation"
)

type MicropostService struct {
	postRepo repository.MicropostRepository
}

func NewMicropostService(postRepo repository.MicropostRepository) *MicropostService {
	return &MicropostService{postRepo: postRepo}
}

// Publish validates and stores a new micropost for its author.
func (s *MicropostService) Publish(ctx context.Context, in validation.MicropostInput) (*models.Micropost, error) {
	if verrs := validation.ValidateMicropost(in); verrs != nil {
		return nil, verrs
	}

	post := &models.Micropost{
		UserID:  in.UserID,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.MicropostsCreatedTotal.Inc()
	return post, nil
}

func (s *MicropostService) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *MicropostService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *MicropostService) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.postRepo.CountByUser(ctx, userID)
}

// Delete removes a micropost. Only the author (or an admin) may delete it.
func (s *MicropostService) Delete(ctx context.Context, actorID uint, actorIsAdmin bool, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID && !actorIsAdmin {
		return models.NewUnauthorizedError("You can only delete your own microposts")
	}
	return s.postRepo.Delete(ctx, postID)
}
