package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func insertMoney(t *testing.T, repo *MoneyRepositoryImpl, userUID uuid.UUID, txID string, status models.MoneyStatus) *models.Money {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	money := &models.Money{
		UserUUID:      userUID,
		AccountNumber: "1234567890",
		UPIID:         "user@upi",
		TransactionID: txID,
		Amount:        decimal.NewFromInt(500),
		Status:        status,
		ProofStatus:   models.UNVERIFIED,
		SecureURL:     "https://proofs.leadmart.io/" + txID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.CreateMoney(context.Background(), money))
	return money
}

func TestMoneyRepositoryImpl_CreateAndGet(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewMoneyRepository(db)
	userUID := uuid.New()

	money := insertMoney(t, repo, userUID, "tx-1", models.PENDING)
	assert.NotZero(t, money.ID)

	got, err := repo.GetMoneyByID(context.Background(), money.ID)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", got.TransactionID)
	assert.Equal(t, models.PENDING, got.Status)
	assert.Equal(t, models.UNVERIFIED, got.ProofStatus)
	assert.True(t, decimal.NewFromInt(500).Equal(got.Amount))

	_, err = repo.GetMoneyByID(context.Background(), 9999)
	assert.Error(t, err)
}

func TestMoneyRepositoryImpl_Pagination(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewMoneyRepository(db)
	userUID := uuid.New()
	otherUID := uuid.New()
	for i := 0; i < 7; i++ {
		insertMoney(t, repo, userUID, fmt.Sprintf("tx-%d", i), models.PENDING)
	}
	insertMoney(t, repo, otherUID, "tx-other", models.APPROVED)

	count, err := repo.CountByUser(context.Background(), &userUID)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	page, err := repo.GetByUser(context.Background(), &userUID, 5, 0)
	require.NoError(t, err)
	require.Len(t, *page, 5)
	assert.Equal(t, "tx-6", (*page)[0].TransactionID, "newest request first")

	page, err = repo.GetByUser(context.Background(), &userUID, 5, 5)
	require.NoError(t, err)
	assert.Len(t, *page, 2)

	pending, err := repo.CountByStatus(context.Background(), models.PENDING)
	require.NoError(t, err)
	assert.Equal(t, 7, pending)

	approved, err := repo.GetByStatus(context.Background(), models.APPROVED, 5, 0)
	require.NoError(t, err)
	require.Len(t, *approved, 1)
	assert.Equal(t, otherUID, (*approved)[0].UserUUID)
}

func TestMoneyRepositoryImpl_UpdateStatus(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewMoneyRepository(db)
	money := insertMoney(t, repo, uuid.New(), "tx-1", models.PENDING)

	update := func(from, to models.MoneyStatus) error {
		tx, err := db.Beginx()
		require.NoError(t, err)
		defer func(tx *sqlx.Tx) {
			_ = tx.Rollback()
		}(tx)
		if err := repo.UpdateStatus(context.Background(), tx, money.ID, from, to); err != nil {
			return err
		}
		return tx.Commit()
	}

	require.NoError(t, update(models.PENDING, models.APPROVED))
	assert.ErrorIs(t, update(models.PENDING, models.REJECTED), ErrNoRowsAffected, "already reviewed")

	got, err := repo.GetMoneyByID(context.Background(), money.ID)
	require.NoError(t, err)
	assert.Equal(t, models.APPROVED, got.Status)
}

func TestMoneyRepositoryImpl_Unverified(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewMoneyRepository(db)
	userUID := uuid.New()
	first := insertMoney(t, repo, userUID, "tx-1", models.PENDING)
	insertMoney(t, repo, userUID, "tx-2", models.PENDING)
	insertMoney(t, repo, userUID, "tx-3", models.REJECTED)

	count, err := repo.CountUnverified()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.UpdateProofStatus(context.Background(), first.ID, models.VERIFIED))

	got, err := repo.GetUnverified(10, 0)
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "tx-2", (*got)[0].TransactionID)

	assert.ErrorIs(t, repo.UpdateProofStatus(context.Background(), 9999, models.VERIFIED), ErrNoRowsAffected)
}
