package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func TestUserServiceImpl_CreateAndAuthenticate(t *testing.T) {
	db := sqlitetest.NewDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice", "alice@leadmart.io", "password")
	require.NoError(t, err)
	assert.Equal(t, models.USER, user.Role)
	assert.True(t, user.TotalMoney.IsZero())

	_, err = svc.Create(ctx, "alice2", "alice@leadmart.io", "password")
	assert.Error(t, err, "email is unique")

	got, err := svc.Authenticate(ctx, "alice@leadmart.io", "password")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, got.UUID)

	_, err = svc.Authenticate(ctx, "alice@leadmart.io", "wrong")
	assert.Equal(t, "Invalid password", responseMsg(t, err))

	_, err = svc.Authenticate(ctx, "nobody@leadmart.io", "password")
	assert.Equal(t, "User not found", responseMsg(t, err))

	byID, err := svc.GetByID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)
}
