package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
)

type ProductService interface {
	ListProducts(ctx context.Context) (*[]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{productRepo: productRepo}
}

// ListProducts returns the catalog, newest first.
func (ps *ProductServiceImpl) ListProducts(ctx context.Context) (*[]models.Product, error) {
	return ps.productRepo.ListAll(ctx)
}

func (ps *ProductServiceImpl) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ProductName = strings.TrimSpace(product.ProductName)
	switch {
	case product.ProductName == "":
		return badRequest("Product name is required")
	case product.Stock < 0:
		return badRequest("Stock cannot be negative")
	case product.MinProduct < 0 || product.MinProduct > product.MaxProduct:
		return badRequest("Invalid quantity bounds")
	case product.Price.LessThan(decimal.Zero):
		return badRequest("Price cannot be negative")
	}
	product.CreatedAt = time.Now()

	if err := ps.productRepo.CreateProduct(ctx, product); err != nil {
		appErr := appErrors.ResponseCodeError{}
		if errors.As(err, &appErr) {
			return err
		}
		return appErrors.New(err, "Error adding product")
	}
	return nil
}
