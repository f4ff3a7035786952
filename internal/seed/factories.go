// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"cliptube/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures factory behavior.
type Options struct {
	// SkipBcrypt stores plaintext passwords; dev fast mode only.
	SkipBcrypt bool
	// DryRun logs entities instead of persisting them.
	DryRun bool
	// MaxDays bounds how far back generated created_at timestamps spread.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// pastTime returns a timestamp spread over the configured history window.
func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildVideo constructs a video for the given owner without persisting it.
func (f *Factory) BuildVideo(user *models.User, overrides ...func(*models.Video)) *models.Video {
	categories := models.Categories()
	video := &models.Video{
		UserID:          user.ID,
		Title:           gofakeit.Sentence(5),
		Description:     gofakeit.Paragraph(1, 3, 5, "\n"),
		VideoURL:        fmt.Sprintf("https://media.cliptube.dev/videos/%s.mp4", gofakeit.UUID()),
		ThumbnailURL:    fmt.Sprintf("https://picsum.photos/seed/%s/640/360", gofakeit.UUID()),
		Category:        categories[f.rng.Intn(len(categories))],
		DurationSeconds: uint(f.rng.Intn(1200) + 30),
		IsPublished:     true,
	}
	video.CreatedAt = f.pastTime()

	for _, override := range overrides {
		override(video)
	}
	return video
}

// CreateVideo builds and persists a video.
func (f *Factory) CreateVideo(user *models.User, overrides ...func(*models.Video)) (*models.Video, error) {
	video := f.BuildVideo(user, overrides...)
	if f.opts.DryRun {
		f.nextID++
		video.ID = f.nextID
		log.Printf("[dry-run] CreateVideo: %s", video.Title)
		return video, nil
	}
	if err := f.db.Create(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// CreateVideosBatch persists multiple videos in a single DB call when possible.
func (f *Factory) CreateVideosBatch(videos []*models.Video) error {
	if f.opts.DryRun {
		for _, v := range videos {
			f.nextID++
			v.ID = f.nextID
		}
		log.Printf("[dry-run] CreateVideosBatch: %d videos (no DB write)", len(videos))
		return nil
	}
	return f.db.Create(&videos).Error
}

// CreateComment persists a comment; pass a parent to create a reply.
func (f *Factory) CreateComment(user *models.User, video *models.Video, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		VideoID: video.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(gofakeit.Number(5, 20)),
	}
	if parent != nil {
		comment.ParentCommentID = &parent.ID
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateVote persists a like or dislike row for the pair. Duplicate pairs
// violate the unique index, so callers pick distinct user/video pairs.
func (f *Factory) CreateVote(user *models.User, video *models.Video, likeType string) (*models.Like, error) {
	like := &models.Like{
		UserID:   user.ID,
		VideoID:  video.ID,
		LikeType: likeType,
	}
	if f.opts.DryRun {
		f.nextID++
		like.ID = f.nextID
		return like, nil
	}
	if err := f.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// CreateSubscription persists a subscription from subscriber to channel.
func (f *Factory) CreateSubscription(subscriber, channel *models.User) (*models.Subscription, error) {
	sub := &models.Subscription{
		SubscriberID:   subscriber.ID,
		SubscribedToID: channel.ID,
	}
	if f.opts.DryRun {
		f.nextID++
		sub.ID = f.nextID
		return sub, nil
	}
	if err := f.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateWatchLater persists a watch-later entry.
func (f *Factory) CreateWatchLater(user *models.User, video *models.Video) (*models.WatchLater, error) {
	entry := &models.WatchLater{
		UserID:  user.ID,
		VideoID: video.ID,
	}
	if f.opts.DryRun {
		f.nextID++
		entry.ID = f.nextID
		return entry, nil
	}
	if err := f.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
