package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

func TestNotifications_ContadorYMarcado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewNotificationUseCase(testutil.NewNotificationRepo())

	first, err := uc.Create(ctx, dto.NotificationRequest{UserID: "u1", Title: "A", Message: "a"})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationInfo, first.Type)
	_, err = uc.Create(ctx, dto.NotificationRequest{UserID: "u1", Title: "B", Message: "b", Type: entity.NotificationWarning})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.NotificationRequest{UserID: "u2", Title: "C", Message: "c"})
	require.NoError(t, err)

	c, err := uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Count)

	assert.ErrorIs(t, uc.MarkRead(ctx, "u2", first.ID), domain.ErrNotFound, "no se marca la de otro usuario")
	require.NoError(t, uc.MarkRead(ctx, "u1", first.ID))

	unread, err := uc.List(ctx, "u1", dto.NotificationListQuery{Unread: true})
	require.NoError(t, err)
	require.Len(t, unread.Items, 1)
	assert.Equal(t, "B", unread.Items[0].Title)

	n, err := uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Count)

	c, err = uc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, c.Count)
}
