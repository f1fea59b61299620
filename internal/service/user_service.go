// Package service contains the application's business logic.
package service

import (
	"context"

	"murmur/internal/auth"
	"murmur/internal/models"
	"murmur/internal/observability"
	"murmur/internal/repository"
	"murmur/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the input, hashes the password and creates the account.
// All rule violations are collected and returned together, including email
// uniqueness, so a client can render every problem at once.
func (s *UserService) Register(ctx context.Context, in validation.UserInput) (*models.User, error) {
	verrs := validation.ValidateUser(in)
	if verrs == nil {
		verrs = models.NewValidationErrors()
	}

	if validation.ValidEmail(in.Email) {
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			verrs.Add("email", "has already been taken")
		}
	}

	if verrs.Any() {
		observability.SignupsTotal.WithLabelValues("rejected").Inc()
		return nil, verrs
	}

	digest, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:           in.Name,
		Email:          models.CanonicalEmail(in.Email),
		PasswordDigest: digest,
	}
	// A concurrent signup for the same address surfaces here as the same
	// validation error the pre-check produces.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.SignupsTotal.WithLabelValues("accepted").Inc()
	return user, nil
}

// Authenticate returns the user for a matching email/password pair. A wrong
// password and an unknown email are indistinguishable to the caller: both
// return (nil, nil).
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !auth.VerifyPassword(user.PasswordDigest, password) {
		return nil, nil
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserWithMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMicroposts(ctx, id, limit)
}

func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Admin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Destroy removes a user and everything they authored or participated in.
// Admins cannot destroy themselves; that check lives here rather than in the
// handler so every caller gets it.
func (s *UserService) Destroy(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewValidationError("Admins cannot delete their own account")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, targetID)
}
