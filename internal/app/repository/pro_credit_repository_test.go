package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func TestProCreditRepositoryImpl_FindByUserID(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewProCreditRepository(db)
	user := sqlitetest.InsertUser(t, db, "pro", models.PRO, 0)
	sqlitetest.InsertProCredit(t, db, user.UUID, 2, 8, 1000)

	got, err := repo.FindByUserID(context.Background(), user.UUID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MinProduct)
	assert.Equal(t, 8, got.MaxProduct)
	assert.True(t, decimal.NewFromInt(1000).Equal(got.AmountLimit))

	got, err = repo.FindByUserID(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestProCreditRepositoryImpl_Upsert(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewProCreditRepository(db)
	user := sqlitetest.InsertUser(t, db, "pro", models.PRO, 0)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, limit := range []int64{300, 700} {
		tx, err := db.Beginx()
		require.NoError(t, err)
		err = repo.Upsert(context.Background(), tx, &models.ProCredit{
			UserUUID:    user.UUID,
			MinProduct:  1,
			MaxProduct:  int(limit / 100),
			AmountLimit: decimal.NewFromInt(limit),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
	}

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM pro_credits"))
	assert.Equal(t, 1, count, "upsert should keep one record per user")

	got, err := repo.FindByUserID(context.Background(), user.UUID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.MaxProduct)
	assert.True(t, decimal.NewFromInt(700).Equal(got.AmountLimit))
}
