package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func TestProductRepositoryImpl_CreateProduct(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewProductRepository(db)

	product := &models.Product{
		ProductName: "leads-basic",
		Stock:       100,
		MinProduct:  1,
		MaxProduct:  10,
		Price:       decimal.NewFromInt(20),
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateProduct(context.Background(), product))
	assert.NotZero(t, product.ID, "id should be returned")

	dup := *product
	dup.ID = 0
	assert.Error(t, repo.CreateProduct(context.Background(), &dup), "duplicate name should fail")
}

func TestProductRepositoryImpl_ListAll(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewProductRepository(db)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, *got)

	sqlitetest.InsertProduct(t, db, "first", 1, 0, 5, 10)
	sqlitetest.InsertProduct(t, db, "second", 1, 0, 5, 10)

	got, err = repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, *got, 2)
	assert.Equal(t, "second", (*got)[0].ProductName, "newest product first")
	assert.Equal(t, "first", (*got)[1].ProductName)
}

func TestProductRepositoryImpl_DecrementStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantErr   error
		wantStock int
	}{
		{name: "Partial decrement", stock: 10, quantity: 4, wantStock: 6},
		{name: "Decrement to zero", stock: 5, quantity: 5, wantStock: 0},
		{name: "Not enough stock", stock: 3, quantity: 4, wantErr: ErrNoRowsAffected, wantStock: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := sqlitetest.NewDB(t)
			repo := NewProductRepository(db)
			sqlitetest.InsertProduct(t, db, "leads", tt.stock, 0, 10, 1)

			tx, err := db.Beginx()
			require.NoError(t, err)
			err = repo.DecrementStock(context.Background(), tx, "leads", tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, tx.Rollback())
			} else {
				require.NoError(t, err)
				require.NoError(t, tx.Commit())
			}

			var stock int
			require.NoError(t, db.Get(&stock, "SELECT stock FROM products WHERE product_name = $1", "leads"))
			assert.Equal(t, tt.wantStock, stock)
		})
	}
}
