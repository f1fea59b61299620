package seed

import (
	"fmt"
	"log"

	"murmur/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates the demo-data presets. Individual entity creation
// lives in Factory; Seeder decides how many of what and how they connect.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) (*Seeder, error) {
	factory, err := NewFactory(db, opts)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory, opts: opts}, nil
}

// Run populates the database: a known admin account, a batch of generated
// users, microposts for the most active ones, and a follow mesh centered
// on the admin so their feed has content on first login.
func (s *Seeder) Run() error {
	log.Printf("Seeding %d users with up to %d microposts each...", s.opts.NumUsers, s.opts.PostsPerUser)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	users, err := s.SeedUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	posts, err := s.SeedMicroposts(users)
	if err != nil {
		return fmt.Errorf("seed microposts: %w", err)
	}
	log.Printf("Created %d microposts", posts)

	edges, err := s.SeedFollowGraph(users)
	if err != nil {
		return fmt.Errorf("seed follow graph: %w", err)
	}
	log.Printf("Created %d follow edges", edges)

	return nil
}

// ClearAll removes all seeded data. Relationship and micropost rows go
// first so user deletion never trips foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Relationship{},
		&models.Micropost{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedUsers creates count users. The first is a known admin account so
// developers always have a login that can exercise the admin-only routes.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Name = "Example User"
		u.Email = "example@murmur.test"
		u.Admin = true
	})
	if err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 1; i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			// Email collision on a dirty database; skip and move on.
			if models.IsUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		users = append(users, user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// SeedMicroposts gives the first handful of users a full set of posts.
// Most accounts stay quiet, which is closer to real activity shape and
// keeps lists interesting without bloating the table.
func (s *Seeder) SeedMicroposts(users []*models.User) (int, error) {
	active := len(users)
	if active > 6 {
		active = 6
	}

	total := 0
	for _, user := range users[:active] {
		for i := 0; i < s.opts.PostsPerUser; i++ {
			if _, err := s.factory.CreateMicropost(user); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

// SeedFollowGraph wires a mesh around the first user: they follow most of
// the others, and a band of the others follows them back.
func (s *Seeder) SeedFollowGraph(users []*models.User) (int, error) {
	if len(users) < 3 {
		return 0, nil
	}
	hub := users[0]
	edges := 0

	followingEnd := len(users)
	if followingEnd > 51 {
		followingEnd = 51
	}
	for _, other := range users[2:followingEnd] {
		if err := s.factory.CreateRelationship(hub, other); err != nil {
			return edges, err
		}
		edges++
	}

	followersEnd := len(users)
	if followersEnd > 41 {
		followersEnd = 41
	}
	for _, other := range users[3:followersEnd] {
		if err := s.factory.CreateRelationship(other, hub); err != nil {
			return edges, err
		}
		edges++
	}
	return edges, nil
}
