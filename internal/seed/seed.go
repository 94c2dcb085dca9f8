package seed

import (
	"fmt"
	"log"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data Seed generates.
type Options struct {
	NumUsers    int
	NumMessages int // total across all users
	// ShouldClean truncates existing rows before seeding.
	ShouldClean bool
	// SkipBcrypt stores plaintext passwords for faster local seeding.
	// Never use outside development.
	SkipBcrypt bool
	// BcryptCost overrides the hashing cost; zero means bcrypt.DefaultCost.
	BcryptCost int
	// MaxDays bounds the created_at spread of generated messages.
	MaxDays int
}

// DefaultOptions are a reasonable preset for a local demo database.
func DefaultOptions() Options {
	return Options{
		NumUsers:    25,
		NumMessages: 200,
		ShouldClean: true,
		MaxDays:     90,
	}
}

// Seed populates the database with users, messages, a follow mesh and likes.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = DefaultOptions().NumUsers
	}
	if opts.NumMessages <= 0 {
		opts.NumMessages = DefaultOptions().NumMessages
	}

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
		logStep("cleared existing data")
	}

	f := NewFactory(db, opts)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("creating users: %w", err)
	}
	logStep("created %d users", len(users))

	messages, err := createMessages(f, users, opts.NumMessages)
	if err != nil {
		return fmt.Errorf("creating messages: %w", err)
	}
	logStep("created %d messages", len(messages))

	follows, err := createFollowMesh(f, users)
	if err != nil {
		return fmt.Errorf("creating follows: %w", err)
	}
	logStep("created %d follow edges", follows)

	likes, err := createLikes(f, users, messages)
	if err != nil {
		return fmt.Errorf("creating likes: %w", err)
	}
	logStep("created %d likes", likes)

	log.Printf("seed complete: %d users, %d messages, %d follows, %d likes",
		len(users), len(messages), follows, likes)
	return nil
}

// clearData removes all seedable rows. Order matters only for databases
// without cascading deletes; deleting dependents first keeps it portable.
func clearData(db *gorm.DB) error {
	for _, model := range []any{&models.Like{}, &models.Follow{}, &models.Message{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(f *Factory, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createMessages(f *Factory, users []*models.User, n int) ([]*models.Message, error) {
	messages := make([]*models.Message, 0, n)
	for i := 0; i < n; i++ {
		author := users[f.rng.Intn(len(users))]
		message, err := f.CreateMessage(author)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// createFollowMesh gives every user a handful of people to follow so home
// feeds are non-empty. Each user follows roughly a quarter of the others.
func createFollowMesh(f *Factory, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	created := 0
	for _, follower := range users {
		target := len(users) / 4
		if target < 1 {
			target = 1
		}
		seen := map[uint]bool{follower.ID: true}
		for len(seen)-1 < target {
			followee := users[f.rng.Intn(len(users))]
			if seen[followee.ID] {
				continue
			}
			seen[followee.ID] = true
			if err := f.CreateFollow(follower, followee); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// createLikes sprinkles likes across messages, skipping self-likes so the
// data reads naturally. Duplicate (user, message) pairs are avoided up front
// rather than relying on the unique index.
func createLikes(f *Factory, users []*models.User, messages []*models.Message) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}
	created := 0
	liked := map[[2]uint]bool{}
	attempts := len(messages) * 2
	for i := 0; i < attempts; i++ {
		user := users[f.rng.Intn(len(users))]
		message := messages[f.rng.Intn(len(messages))]
		if message.UserID == user.ID {
			continue
		}
		key := [2]uint{user.ID, message.ID}
		if liked[key] {
			continue
		}
		liked[key] = true
		if err := f.CreateLike(user, message); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
