package service

import (
	"context"

	"murmur/internal/models"
)

type userRepoStub struct {
	getByIDFn               func(context.Context, uint) (*models.User, error)
	getByIDWithMicropostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn            func(context.Context, string) (*models.User, error)
	createFn                func(context.Context, *models.User) error
	updateFn                func(context.Context, *models.User) error
	deleteCascadeFn         func(context.Context, uint) error
	listFn                  func(context.Context, int, int) ([]models.User, error)
	countFn                 func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMicroposts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMicropostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:               func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithMicropostsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:            func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:                func(context.Context, *models.User) error { return nil },
		updateFn:                func(context.Context, *models.User) error { return nil },
		deleteCascadeFn:         func(context.Context, uint) error { return nil },
		listFn:                  func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		countFn:                 func(context.Context) (int64, error) { return 0, nil },
	}
}

type relationshipRepoStub struct {
	followFn         func(context.Context, uint, uint) error
	unfollowFn       func(context.Context, uint, uint) error
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	followedUsersFn  func(context.Context, uint) ([]models.User, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	countFollowingFn func(context.Context, uint) (int64, error)
	countFollowersFn func(context.Context, uint) (int64, error)
}

func (s *relationshipRepoStub) Follow(ctx context.Context, followerID, followedID uint) error {
	return s.followFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.unfollowFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) FollowedUsers(ctx context.Context, followerID uint) ([]models.User, error) {
	return s.followedUsersFn(ctx, followerID)
}
func (s *relationshipRepoStub) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	return s.followersFn(ctx, followedID)
}
func (s *relationshipRepoStub) CountFollowing(ctx context.Context, followerID uint) (int64, error) {
	return s.countFollowingFn(ctx, followerID)
}
func (s *relationshipRepoStub) CountFollowers(ctx context.Context, followedID uint) (int64, error) {
	return s.countFollowersFn(ctx, followedID)
}

func noopRelationshipRepo() *relationshipRepoStub {
	return &relationshipRepoStub{
		followFn:         func(context.Context, uint, uint) error { return nil },
		unfollowFn:       func(context.Context, uint, uint) error { return nil },
		isFollowingFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		followedUsersFn:  func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followersFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type micropostRepoStub struct {
	createFn      func(context.Context, *models.Micropost) error
	getByIDFn     func(context.Context, uint) (*models.Micropost, error)
	listByUserFn  func(context.Context, uint, int, int) ([]models.Micropost, error)
	countByUserFn func(context.Context, uint) (int64, error)
	deleteFn      func(context.Context, uint) error
	feedFn        func(context.Context, uint, int, int) ([]models.Micropost, error)
}

func (s *micropostRepoStub) Create(ctx context.Context, post *models.Micropost) error {
	return s.createFn(ctx, post)
}
func (s *micropostRepoStub) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	return s.getByIDFn(ctx, id)
}
func (s *micropostRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *micropostRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *micropostRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *micropostRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.feedFn(ctx, userID, limit, offset)
}

func noopMicropostRepo() *micropostRepoStub {
	return &micropostRepoStub{
		createFn:      func(context.Context, *models.Micropost) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Micropost, error) { return &models.Micropost{}, nil },
		listByUserFn:  func(context.Context, uint, int, int) ([]models.Micropost, error) { return nil, nil },
		countByUserFn: func(context.Context, uint) (int64, error) { return 0, nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		feedFn:        func(context.Context, uint, int, int) ([]models.Micropost, error) { return nil, nil },
	}
}
