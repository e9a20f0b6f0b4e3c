package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

// ErrDuplicateOrderID is returned when the generated order id is already taken.
var ErrDuplicateOrderID = errors.New("duplicate order id")

type OrderRepository interface {
	CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
	GetOrdersByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error)
	GetDB() *sqlx.DB
}

type OrderRepositoryImpl struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

func (or *OrderRepositoryImpl) CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	query := `INSERT INTO orders (order_id, user_uuid, products, amount, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, order.OrderID, order.UserUUID, order.Products, order.Amount, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrderID, order.OrderID)
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (or *OrderRepositoryImpl) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	query := `SELECT * FROM orders WHERE order_id = $1;`
	order := &models.Order{}
	err := or.db.GetContext(ctx, order, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Order not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (or *OrderRepositoryImpl) GetOrdersByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error) {
	query := `SELECT * FROM orders WHERE user_uuid = $1 order by created_at desc, id desc;`
	orders := make([]models.Order, 0)
	err := or.db.SelectContext(ctx, &orders, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &orders, nil
		}
		return nil, fmt.Errorf("read user orders: %w", err)
	}
	return &orders, nil
}

func (or *OrderRepositoryImpl) GetDB() *sqlx.DB {
	return or.db
}
