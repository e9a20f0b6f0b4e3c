package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func TestProductServiceImpl_CreateProduct(t *testing.T) {
	db := sqlitetest.NewDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	tests := []struct {
		name    string
		product models.Product
		wantMsg string
		wantErr bool
	}{
		{name: "Valid product", product: models.Product{ProductName: " fresh Leads ", Stock: 10, MinProduct: 5, MaxProduct: 20, Price: decimal.NewFromInt(100)}},
		{name: "Duplicate name", product: models.Product{ProductName: "fresh Leads", Stock: 1, MaxProduct: 1}, wantErr: true},
		{name: "Missing name", product: models.Product{ProductName: "  ", MaxProduct: 1}, wantMsg: "Product name is required"},
		{name: "Negative stock", product: models.Product{ProductName: "x", Stock: -1, MaxProduct: 1}, wantMsg: "Stock cannot be negative"},
		{name: "Inverted bounds", product: models.Product{ProductName: "x", MinProduct: 3, MaxProduct: 1}, wantMsg: "Invalid quantity bounds"},
		{name: "Negative price", product: models.Product{ProductName: "x", MaxProduct: 1, Price: decimal.NewFromInt(-1)}, wantMsg: "Price cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := tt.product
			err := svc.CreateProduct(context.Background(), &product)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, responseMsg(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "fresh Leads", product.ProductName)
		})
	}

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, *products, 1)
}
