package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhq/pawhaven/internal/domain/notification"
)

func createTestNotification(t *testing.T, repo notification.Repository, title string) *notification.Notification {
	t.Helper()

	n, err := notification.NewNotification(notification.TypeSystem, title, "something happened", nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), n))
	require.NotZero(t, n.ID())
	return n
}

func TestNotificationRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db, testLogger())
	ctx := context.Background()

	n := createTestNotification(t, repo, "maintenance window")

	found, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "maintenance window", found.Title())
	assert.False(t, found.IsRead())
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db, testLogger())
	ctx := context.Background()

	createTestNotification(t, repo, "first")
	createTestNotification(t, repo, "second")
	createTestNotification(t, repo, "third")

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	affected, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	unread, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	// Nothing left to mark
	affected, err = repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestNotificationRepository_List_UnreadOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db, testLogger())
	ctx := context.Background()

	read := createTestNotification(t, repo, "old news")
	createTestNotification(t, repo, "fresh news")

	read.MarkRead()
	require.NoError(t, repo.Update(ctx, read))

	notifications, total, err := repo.List(ctx, notification.ListFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, notifications, 1)
	assert.Equal(t, "fresh news", notifications[0].Title())

	systemType := notification.TypeSystem
	_, total, err = repo.List(ctx, notification.ListFilter{Type: &systemType})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
