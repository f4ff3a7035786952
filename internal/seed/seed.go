package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"cliptube/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with a realistic engagement mesh: users who
// upload videos, comment on each other's uploads, vote, subscribe, and save
// videos for later.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder with default factory options.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, Options{}),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Join tables go first so foreign keys
// never dangle mid-cleanup.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{"watch_laters", "subscriptions", "likes", "comments", "videos", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Seed creates numUsers users and numVideos videos, then layers comments,
// votes, subscriptions, and watch-later entries on top. Counters are
// recomputed at the end so the seeded data starts consistent.
func (s *Seeder) Seed(numUsers, numVideos int) error {
	log.Printf("Seeding %d users and %d videos...", numUsers, numVideos)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	videos := make([]*models.Video, 0, numVideos)
	for i := 0; i < numVideos; i++ {
		owner := users[s.rng.Intn(len(users))]
		videos = append(videos, s.factory.BuildVideo(owner))
	}
	if err := s.factory.CreateVideosBatch(videos); err != nil {
		return fmt.Errorf("failed to create videos: %w", err)
	}
	log.Printf("created %d videos", len(videos))

	if err := s.seedComments(users, videos); err != nil {
		return err
	}
	if err := s.seedVotes(users, videos); err != nil {
		return err
	}
	if err := s.seedSubscriptions(users); err != nil {
		return err
	}
	if err := s.seedWatchLater(users, videos); err != nil {
		return err
	}

	if err := s.RecomputeCounters(); err != nil {
		return fmt.Errorf("failed to recompute counters: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func (s *Seeder) seedComments(users []*models.User, videos []*models.Video) error {
	for _, video := range videos {
		numComments := s.rng.Intn(6)
		for i := 0; i < numComments; i++ {
			author := users[s.rng.Intn(len(users))]
			comment, err := s.factory.CreateComment(author, video, nil)
			if err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			// Roughly a third of top-level comments get a reply.
			if s.rng.Intn(3) == 0 {
				replier := users[s.rng.Intn(len(users))]
				if _, err := s.factory.CreateComment(replier, video, comment); err != nil {
					return fmt.Errorf("failed to create reply: %w", err)
				}
			}
		}
	}
	return nil
}

func (s *Seeder) seedVotes(users []*models.User, videos []*models.Video) error {
	for _, video := range videos {
		// Each user votes on this video at most once; sample a subset.
		for _, user := range users {
			roll := s.rng.Intn(10)
			if roll >= 4 {
				continue
			}
			likeType := models.LikeTypeLike
			if roll == 0 {
				likeType = models.LikeTypeDislike
			}
			if _, err := s.factory.CreateVote(user, video, likeType); err != nil {
				return fmt.Errorf("failed to create vote: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedSubscriptions(users []*models.User) error {
	for _, subscriber := range users {
		for _, channel := range users {
			if subscriber.ID == channel.ID {
				continue
			}
			if s.rng.Intn(5) != 0 {
				continue
			}
			if _, err := s.factory.CreateSubscription(subscriber, channel); err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedWatchLater(users []*models.User, videos []*models.Video) error {
	for _, user := range users {
		for _, video := range videos {
			if s.rng.Intn(8) != 0 {
				continue
			}
			if _, err := s.factory.CreateWatchLater(user, video); err != nil {
				return fmt.Errorf("failed to create watch-later entry: %w", err)
			}
		}
	}
	return nil
}

// RecomputeCounters rewrites every denormalized counter from the live rows.
func (s *Seeder) RecomputeCounters() error {
	if err := s.db.Exec(`
		UPDATE videos SET
			like_count = (SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id AND likes.like_type = ?),
			dislike_count = (SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id AND likes.like_type = ?)
	`, models.LikeTypeLike, models.LikeTypeDislike).Error; err != nil {
		return err
	}
	return s.db.Exec(`
		UPDATE users SET
			subscriber_count = (SELECT COUNT(*) FROM subscriptions WHERE subscriptions.subscribed_to_id = users.id)
	`).Error
}
