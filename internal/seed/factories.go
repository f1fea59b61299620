// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"murmur/internal/auth"
	"murmur/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
	// SkipBcrypt stores a plain placeholder digest instead of hashing.
	// Logins will not work for such users; meant for fast local runs
	// where only the graph shape matters.
	SkipBcrypt bool
	// MaxDays bounds how far back generated micropost timestamps reach.
	MaxDays int
}

// SeedPassword is the password every generated account accepts.
const SeedPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// digest is computed once; bcrypt per user would dominate seed time
	digest string
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	f := &Factory{
		db: db,
		//nolint:gosec // weak randomness is fine for seeding
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		opts: opts,
	}

	if opts.SkipBcrypt {
		f.digest = "seed-placeholder-digest"
	} else {
		digest, err := auth.HashPassword(SeedPassword)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		f.digest = digest
	}
	return f, nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	if len(name) > 50 {
		name = name[:50]
	}

	user := &models.User{
		Name: name,
		// Email uniqueness is enforced by the DB; prefix with a random
		// number so repeated runs without -clean rarely collide.
		Email:          fmt.Sprintf("%d.%s", gofakeit.Number(1000, 9999), gofakeit.Email()),
		PasswordDigest: f.digest,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMicropost constructs and persists a micropost for the given user
// with a created_at spread over the recent past.
func (f *Factory) CreateMicropost(user *models.User, overrides ...func(*models.Micropost)) (*models.Micropost, error) {
	content := gofakeit.Sentence(f.rng.Intn(10) + 3)
	if len(content) > 140 {
		content = content[:140]
	}

	post := &models.Micropost{
		UserID:    user.ID,
		Content:   content,
		CreatedAt: f.pastTimestamp(),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateRelationship persists a follow edge between two users. Duplicate
// edges are ignored so mesh generation can be sloppy about collisions.
func (f *Factory) CreateRelationship(follower, followed *models.User) error {
	rel := &models.Relationship{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	err := f.db.Create(rel).Error
	if err != nil && models.IsUniqueViolation(err) {
		return nil
	}
	return err
}

func (f *Factory) pastTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}
