package service

import (
	"context"
	"regexp"
	"testing"

	"cliptube/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func expectVideoLock(mock sqlmock.Sqlmock, videoID uint) {
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "like_count", "dislike_count"}).
		AddRow(videoID, 1, "test video", 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "videos" WHERE "videos"."id" = $1 AND "videos"."deleted_at" IS NULL ORDER BY "videos"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(videoID, 1).
		WillReturnRows(rows)
}

func expectVoteCounts(mock sqlmock.Sqlmock, videoID uint, likes, dislikes int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE video_id = $1 AND like_type = $2`)).
		WithArgs(videoID, models.LikeTypeLike).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(likes))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE video_id = $1 AND like_type = $2`)).
		WithArgs(videoID, models.LikeTypeDislike).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(dislikes))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "videos" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestToggleVote_Applied(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectVideoLock(mock, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND video_id = $2`)).
		WithArgs(1, 10, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	expectVoteCounts(mock, 10, 1, 0)
	mock.ExpectCommit()

	result, err := svc.ToggleVote(ctx, 1, 10, models.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, VoteApplied, result.Outcome)
	assert.Equal(t, uint(1), result.LikeCount)
	assert.Equal(t, uint(0), result.DislikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleVote_Removed(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectVideoLock(mock, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND video_id = $2`)).
		WithArgs(1, 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_id", "like_type"}).
			AddRow(5, 1, 10, models.LikeTypeLike))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectVoteCounts(mock, 10, 0, 0)
	mock.ExpectCommit()

	result, err := svc.ToggleVote(ctx, 1, 10, models.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, VoteRemoved, result.Outcome)
	assert.Equal(t, uint(0), result.LikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleVote_Switched(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()

	mock.ExpectBegin()
	expectVideoLock(mock, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND video_id = $2`)).
		WithArgs(1, 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_id", "like_type"}).
			AddRow(5, 1, 10, models.LikeTypeLike))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "likes" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectVoteCounts(mock, 10, 0, 1)
	mock.ExpectCommit()

	result, err := svc.ToggleVote(ctx, 1, 10, models.LikeTypeDislike)
	require.NoError(t, err)
	assert.Equal(t, VoteSwitched, result.Outcome)
	assert.Equal(t, uint(0), result.LikeCount)
	assert.Equal(t, uint(1), result.DislikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleVote_ToggleOffRestoresCounts(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)
	ctx := context.Background()

	// First toggle applies the vote.
	mock.ExpectBegin()
	expectVideoLock(mock, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND video_id = $2`)).
		WithArgs(1, 10, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	expectVoteCounts(mock, 10, 3, 1)
	mock.ExpectCommit()

	// Second identical toggle removes it again.
	mock.ExpectBegin()
	expectVideoLock(mock, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "likes" WHERE user_id = $1 AND video_id = $2`)).
		WithArgs(1, 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_id", "like_type"}).
			AddRow(5, 1, 10, models.LikeTypeLike))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectVoteCounts(mock, 10, 2, 1)
	mock.ExpectCommit()

	first, err := svc.ToggleVote(ctx, 1, 10, models.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, VoteApplied, first.Outcome)
	assert.Equal(t, uint(3), first.LikeCount)

	second, err := svc.ToggleVote(ctx, 1, 10, models.LikeTypeLike)
	require.NoError(t, err)
	assert.Equal(t, VoteRemoved, second.Outcome)
	assert.Equal(t, uint(2), second.LikeCount)
	assert.Equal(t, uint(1), second.DislikeCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleVote_InvalidType(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewEngagementService(db)

	result, err := svc.ToggleVote(context.Background(), 1, 10, "love")
	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestToggleVote_VideoNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "videos" WHERE "videos"."id" = $1`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	result, err := svc.ToggleVote(context.Background(), 1, 99, models.LikeTypeLike)
	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectChannelLock(mock sqlmock.Sqlmock, channelID uint) {
	rows := sqlmock.NewRows([]string{"id", "username", "subscriber_count"}).
		AddRow(channelID, "channel", 0)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(channelID, 1).
		WillReturnRows(rows)
}

func TestToggleSubscription_Subscribe(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectBegin()
	expectChannelLock(mock, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subscriptions" WHERE subscriber_id = $1 AND subscribed_to_id = $2`)).
		WithArgs(1, 2, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "subscriptions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "subscriptions" WHERE subscribed_to_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.ToggleSubscription(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, Subscribed, result.Outcome)
	assert.Equal(t, uint(1), result.SubscriberCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSubscription_Unsubscribe(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectBegin()
	expectChannelLock(mock, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subscriptions" WHERE subscriber_id = $1 AND subscribed_to_id = $2`)).
		WithArgs(1, 2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subscriber_id", "subscribed_to_id"}).
			AddRow(7, 1, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "subscriptions"`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "subscriptions" WHERE subscribed_to_id = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.ToggleSubscription(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, Unsubscribed, result.Outcome)
	assert.Equal(t, uint(0), result.SubscriberCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSubscription_SelfSubscription(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewEngagementService(db)

	result, err := svc.ToggleSubscription(context.Background(), 1, 1)
	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestToggleSubscription_ChannelNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewEngagementService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	result, err := svc.ToggleSubscription(context.Background(), 1, 99)
	assert.Nil(t, result)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
