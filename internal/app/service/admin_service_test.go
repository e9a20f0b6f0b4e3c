package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/config"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
	"golang.org/x/crypto/bcrypt"
)

func newAdminFixture(t *testing.T) (*AdminServiceImpl, *repository.UserRepositoryImpl) {
	t.Helper()
	db := sqlitetest.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAdminService(userRepo, repository.NewProCreditRepository(db), config.AppConfig{PageSize: 2}), userRepo
}

func responseMsg(t *testing.T, err error) string {
	t.Helper()
	var rce appErrors.ResponseCodeError
	require.ErrorAs(t, err, &rce)
	return rce.Msg()
}

func TestAdminServiceImpl_BlockUnblock(t *testing.T) {
	svc, userRepo := newAdminFixture(t)
	db := userRepo.GetDB()
	admin := sqlitetest.InsertUser(t, db, "admin", models.ADMIN, 0)
	user := sqlitetest.InsertUser(t, db, "user", models.USER, 0)
	ctx := context.Background()

	assert.Equal(t, "Cannot block an admin.", responseMsg(t, svc.BlockUser(ctx, admin.UUID)))
	assert.Equal(t, "User is not blocked. Cannot perform this action.", responseMsg(t, svc.UnblockUser(ctx, user.UUID)))
	assert.Equal(t, "User not found", responseMsg(t, svc.BlockUser(ctx, uuid.New())))

	require.NoError(t, svc.BlockUser(ctx, user.UUID))
	got, err := userRepo.FindByID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.BLOCKED, got.Role)

	assert.Equal(t, "User is already blocked.", responseMsg(t, svc.BlockUser(ctx, user.UUID)))

	require.NoError(t, svc.UnblockUser(ctx, user.UUID))
	got, err = userRepo.FindByID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.USER, got.Role)
}

func TestAdminServiceImpl_EditUser(t *testing.T) {
	svc, userRepo := newAdminFixture(t)
	db := userRepo.GetDB()
	alice := sqlitetest.InsertUser(t, db, "alice", models.USER, 0)
	sqlitetest.InsertUser(t, db, "bob", models.USER, 0)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     EditUserRequest
		wantMsg string
	}{
		{
			name:    "Email of another user",
			req:     EditUserRequest{ID: alice.UUID, Name: "alice", Email: "bob@leadmart.io"},
			wantMsg: "Email already in use!",
		},
		{
			name:    "Name of another user",
			req:     EditUserRequest{ID: alice.UUID, Name: "bob", Email: "alice@leadmart.io"},
			wantMsg: "Username already exists.",
		},
		{
			name: "Own email and new name",
			req: EditUserRequest{ID: alice.UUID, Name: "alice-renamed", Number: "9222222222",
				Amount: decimal.NewFromInt(420), Email: "alice@leadmart.io"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.EditUser(ctx, tt.req)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, responseMsg(t, err))
				return
			}
			require.NoError(t, err)
			got, err := userRepo.FindByID(ctx, alice.UUID)
			require.NoError(t, err)
			assert.Equal(t, "alice-renamed", got.Name)
			assert.Equal(t, "9222222222", got.Number)
			assertDecimal(t, 420, got.TotalMoney)
		})
	}
}

func TestAdminServiceImpl_UpdatePassword(t *testing.T) {
	svc, userRepo := newAdminFixture(t)
	db := userRepo.GetDB()
	admin := sqlitetest.InsertUser(t, db, "admin", models.ADMIN, 0)
	user := sqlitetest.InsertUser(t, db, "user", models.USER, 0)
	ctx := context.Background()

	assert.Equal(t, "Unauthorized", responseMsg(t, svc.UpdatePassword(ctx, nil, user.UUID, "secret-1")))
	assert.Equal(t, "Unauthorized", responseMsg(t, svc.UpdatePassword(ctx, &user.UUID, user.UUID, "secret-1")))

	require.NoError(t, svc.UpdatePassword(ctx, &admin.UUID, user.UUID, "secret-1"))
	got, err := userRepo.FindByID(ctx, user.UUID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret-1")))
	cost, err := bcrypt.Cost([]byte(got.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, passwordHashCost, cost)

	assert.Equal(t, "Password already used.", responseMsg(t, svc.UpdatePassword(ctx, &admin.UUID, user.UUID, "secret-1")))
}

func TestAdminServiceImpl_ListUsers(t *testing.T) {
	svc, userRepo := newAdminFixture(t)
	for _, name := range []string{"a", "b", "c"} {
		sqlitetest.InsertUser(t, userRepo.GetDB(), name, models.USER, 0)
	}

	page, err := svc.ListUsers(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestAdminServiceImpl_GrantPro(t *testing.T) {
	svc, userRepo := newAdminFixture(t)
	db := userRepo.GetDB()
	user := sqlitetest.InsertUser(t, db, "user", models.USER, 0)
	blocked := sqlitetest.InsertUser(t, db, "blocked", models.BLOCKED, 0)
	ctx := context.Background()

	err := svc.GrantPro(ctx, models.ProCredit{UserUUID: user.UUID, MinProduct: 5, MaxProduct: 1})
	assert.Equal(t, "Invalid PRO credit", responseMsg(t, err))

	err = svc.GrantPro(ctx, models.ProCredit{UserUUID: blocked.UUID, MinProduct: 1, MaxProduct: 5})
	assert.Error(t, err)

	credit := models.ProCredit{UserUUID: user.UUID, MinProduct: 10, MaxProduct: 50, AmountLimit: decimal.NewFromInt(1000)}
	require.NoError(t, svc.GrantPro(ctx, credit))

	got, err := userRepo.FindByID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.PRO, got.Role)

	stored, err := repository.NewProCreditRepository(db).FindByUserID(ctx, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.MinProduct)
	assertDecimal(t, 1000, stored.AmountLimit)
}
