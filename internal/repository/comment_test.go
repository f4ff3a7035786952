package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListTopLevelByVideo(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	commentRows := sqlmock.NewRows([]string{"id", "video_id", "user_id", "content"}).
		AddRow(2, 10, 1, "newer comment").
		AddRow(1, 10, 2, "older comment")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE video_id = $1 AND parent_comment_id IS NULL`)).
		WithArgs(10).
		WillReturnRows(commentRows)

	userRows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow(1, "alice").
		AddRow(2, "bob")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" IN ($1,$2)`)).
		WithArgs(1, 2).
		WillReturnRows(userRows)

	comments, err := repo.ListTopLevelByVideo(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer comment", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListReplies(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	t.Run("Empty Parent Set Skips Query", func(t *testing.T) {
		replies, err := repo.ListReplies(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, replies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fetches Replies For Parents", func(t *testing.T) {
		replyRows := sqlmock.NewRows([]string{"id", "video_id", "user_id", "content", "parent_comment_id"}).
			AddRow(3, 10, 1, "a reply", 1)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE parent_comment_id IN ($1,$2)`)).
			WithArgs(1, 2).
			WillReturnRows(replyRows)

		userRows := sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WithArgs(1).
			WillReturnRows(userRows)

		replies, err := repo.ListReplies(context.Background(), []uint{1, 2})
		require.NoError(t, err)
		require.Len(t, replies, 1)
		assert.Equal(t, uint(1), *replies[0].ParentCommentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
