package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListAll(ctx context.Context) (*[]models.Product, error)
	DecrementStock(ctx context.Context, tx *sqlx.Tx, productName string, quantity int) error
}

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{db: db}
}

func (pr *ProductRepositoryImpl) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `INSERT INTO products (product_name, stock, min_product, max_product, price, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`
	err := pr.db.QueryRowxContext(ctx, query, product.ProductName, product.Stock, product.MinProduct,
		product.MaxProduct, product.Price, product.CreatedAt).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.NewWithCode(err, "Product already exists", http.StatusConflict)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// ListAll returns the whole catalog, newest first.
func (pr *ProductRepositoryImpl) ListAll(ctx context.Context) (*[]models.Product, error) {
	query := `SELECT * FROM products ORDER BY created_at DESC;`
	products := make([]models.Product, 0)
	err := pr.db.SelectContext(ctx, &products, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &products, nil
		}
		return nil, fmt.Errorf("read products: %w", err)
	}
	return &products, nil
}

// DecrementStock takes quantity items off the stock of a product. It never drives
// stock below zero: ErrNoRowsAffected is returned instead.
func (pr *ProductRepositoryImpl) DecrementStock(ctx context.Context, tx *sqlx.Tx, productName string, quantity int) error {
	query := `UPDATE products SET stock = stock - $1 WHERE product_name = $2 AND stock >= $1;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, quantity, productName)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return checkAffected(res)
}
