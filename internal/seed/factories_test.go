package seed

import (
	"strings"
	"testing"
	"time"

	"cliptube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func dryRunFactory(opts Options) *Factory {
	opts.DryRun = true
	return NewFactory(nil, opts)
}

func TestFactory_CreateUser_DryRun(t *testing.T) {
	f := dryRunFactory(Options{SkipBcrypt: true})

	first, err := f.CreateUser()
	require.NoError(t, err)
	second, err := f.CreateUser()
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID, "dry-run users must get distinct synthetic IDs")
	assert.NotEmpty(t, first.Username)
	assert.Contains(t, first.Email, "@")
	assert.Equal(t, "password123", first.Password)
}

func TestFactory_CreateUser_HashesPassword(t *testing.T) {
	f := dryRunFactory(Options{})

	user, err := f.CreateUser()
	require.NoError(t, err)

	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestFactory_CreateUser_Overrides(t *testing.T) {
	f := dryRunFactory(Options{SkipBcrypt: true})

	user, err := f.CreateUser(func(u *models.User) {
		u.Username = "fixed_name"
		u.Bio = "fixed bio"
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed_name", user.Username)
	assert.Equal(t, "fixed bio", user.Bio)
}

func TestFactory_BuildVideo(t *testing.T) {
	f := dryRunFactory(Options{SkipBcrypt: true, MaxDays: 30})
	owner := &models.User{ID: 42}

	video := f.BuildVideo(owner)

	assert.Equal(t, uint(42), video.UserID)
	assert.NotEmpty(t, video.Title)
	assert.True(t, strings.HasPrefix(video.VideoURL, "https://"))
	assert.True(t, video.IsPublished)
	assert.True(t, models.ValidCategory(video.Category), "category %q must be valid", video.Category)
	assert.GreaterOrEqual(t, video.DurationSeconds, uint(30))

	oldest := time.Now().Add(-31 * 24 * time.Hour)
	assert.True(t, video.CreatedAt.After(oldest), "created_at must stay inside the history window")
	assert.True(t, video.CreatedAt.Before(time.Now().Add(time.Minute)))
}

func TestFactory_BuildVideo_Overrides(t *testing.T) {
	f := dryRunFactory(Options{SkipBcrypt: true})
	owner := &models.User{ID: 1}

	video := f.BuildVideo(owner, func(v *models.Video) {
		v.Category = models.CategoryMusic
		v.IsPublished = false
	})

	assert.Equal(t, models.CategoryMusic, video.Category)
	assert.False(t, video.IsPublished)
}
