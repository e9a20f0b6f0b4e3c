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

func newTestOrder(orderID string, userUID uuid.UUID, createdAt time.Time) *models.Order {
	return &models.Order{
		OrderID:   orderID,
		UserUUID:  userUID,
		Products:  models.OrderProducts{{Name: "leads", Quantity: 5}},
		Amount:    decimal.NewFromInt(100),
		CreatedAt: createdAt,
	}
}

func TestOrderRepositoryImpl_CreateOrder(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewOrderRepository(db)
	userUID := uuid.New()

	tests := []struct {
		name    string
		order   *models.Order
		wantErr bool
	}{
		{
			name:    "Successful Order Creation",
			order:   newTestOrder("1234567897", userUID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantErr: false,
		},
		{
			name:    "Duplicate Order ID",
			order:   newTestOrder("1234567897", userUID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.Beginx()
			require.NoError(t, err)

			err = repo.CreateOrder(context.Background(), tx, tt.order)
			if tt.wantErr {
				assert.Error(t, err, "CreateOrder should fail")
				assert.NoError(t, tx.Rollback(), "Rollback should succeed")
				return
			}
			assert.NoError(t, err, "CreateOrder should not fail")
			assert.NotZero(t, tt.order.ID)
			assert.NoError(t, tx.Commit(), "Commit should succeed")
		})
	}
}

func TestOrderRepositoryImpl_GetOrderByID(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewOrderRepository(db)
	order := newTestOrder("1234567897", uuid.New(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(context.Background(), tx, order))
	require.NoError(t, tx.Commit())

	got, err := repo.GetOrderByID(context.Background(), "1234567897")
	require.NoError(t, err)
	assert.Equal(t, order.UserUUID, got.UserUUID)
	assert.Equal(t, order.Products, got.Products)
	assert.True(t, order.Amount.Equal(got.Amount))

	got, err = repo.GetOrderByID(context.Background(), "0000000000")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestOrderRepositoryImpl_GetOrdersByUserUID(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewOrderRepository(db)
	userUID := uuid.New()
	otherUID := uuid.New()

	for i, id := range []string{"1111111116", "2222222224"} {
		tx, err := db.Beginx()
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrder(context.Background(), tx,
			newTestOrder(id, userUID, time.Date(2024, 1, 1, i, 0, 0, 0, time.UTC))))
		require.NoError(t, tx.Commit())
	}

	tests := []struct {
		name    string
		userUID *uuid.UUID
		wantIDs []string
	}{
		{name: "Orders newest first", userUID: &userUID, wantIDs: []string{"2222222224", "1111111116"}},
		{name: "No orders", userUID: &otherUID, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetOrdersByUserUID(context.Background(), tt.userUID)
			require.NoError(t, err)
			ids := make([]string, 0, len(*got))
			for _, o := range *got {
				ids = append(ids, o.OrderID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
