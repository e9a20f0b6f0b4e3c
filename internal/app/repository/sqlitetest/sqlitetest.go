// Package sqlitetest provides an in-memory SQLite database with the application
// schema for repository and service tests.
package sqlitetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/ujwegh/leadmart/internal/app/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users
(
    uuid          TEXT PRIMARY KEY,
    name          TEXT UNIQUE NOT NULL,
    email         TEXT UNIQUE NOT NULL,
    number        TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'USER',
    total_money   NUMERIC NOT NULL DEFAULT 0,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS pro_credits
(
    user_uuid    TEXT PRIMARY KEY,
    min_product  INTEGER NOT NULL DEFAULT 0,
    max_product  INTEGER NOT NULL DEFAULT 0,
    amount_limit NUMERIC NOT NULL DEFAULT 0,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (amount_limit >= 0)
);
CREATE TABLE IF NOT EXISTS products
(
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    product_name TEXT UNIQUE NOT NULL,
    stock        INTEGER NOT NULL DEFAULT 0,
    min_product  INTEGER NOT NULL DEFAULT 0,
    max_product  INTEGER NOT NULL DEFAULT 0,
    price        NUMERIC NOT NULL DEFAULT 0,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (stock >= 0)
);
CREATE TABLE IF NOT EXISTS orders
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id   VARCHAR UNIQUE NOT NULL,
    user_uuid  TEXT NOT NULL,
    products   TEXT NOT NULL,
    amount     NUMERIC NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS money
(
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    user_uuid      TEXT NOT NULL,
    account_number TEXT NOT NULL,
    upi_id         TEXT NOT NULL,
    transaction_id TEXT UNIQUE NOT NULL,
    amount         NUMERIC NOT NULL,
    status         TEXT NOT NULL DEFAULT 'PENDING',
    proof_status   TEXT NOT NULL DEFAULT 'UNVERIFIED',
    secure_url     TEXT NOT NULL,
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (amount > 0)
);
`

// NewDB opens a fresh shared-cache in-memory database and closes it with the test.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	if _, err = db.Exec(schema); err != nil {
		t.Fatalf("could not create schema: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// InsertUser stores a user with the given role and wallet balance.
func InsertUser(t *testing.T, db *sqlx.DB, name string, role models.Role, totalMoney int64) *models.User {
	t.Helper()
	user := &models.User{
		UUID:         uuid.New(),
		Name:         name,
		Email:        name + "@leadmart.io",
		Number:       "9000000000",
		PasswordHash: "hash",
		Role:         role,
		TotalMoney:   decimal.NewFromInt(totalMoney),
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := db.NamedExec(`INSERT INTO users (uuid, name, email, number, password_hash, role, total_money, created_at)
		VALUES (:uuid, :name, :email, :number, :password_hash, :role, :total_money, :created_at)`, user)
	if err != nil {
		t.Fatalf("could not insert user: %v", err)
	}
	return user
}

// InsertProCredit stores the PRO credit record of a user.
func InsertProCredit(t *testing.T, db *sqlx.DB, userUUID uuid.UUID, minProduct, maxProduct int, amountLimit int64) *models.ProCredit {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	credit := &models.ProCredit{
		UserUUID:    userUUID,
		MinProduct:  minProduct,
		MaxProduct:  maxProduct,
		AmountLimit: decimal.NewFromInt(amountLimit),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := db.NamedExec(`INSERT INTO pro_credits (user_uuid, min_product, max_product, amount_limit, created_at, updated_at)
		VALUES (:user_uuid, :min_product, :max_product, :amount_limit, :created_at, :updated_at)`, credit)
	if err != nil {
		t.Fatalf("could not insert pro credit: %v", err)
	}
	return credit
}

// InsertProduct stores a catalog entry; later calls get later creation times.
func InsertProduct(t *testing.T, db *sqlx.DB, name string, stock, minProduct, maxProduct int, price int64) *models.Product {
	t.Helper()
	var count int
	if err := db.Get(&count, `SELECT count(*) FROM products`); err != nil {
		t.Fatalf("could not count products: %v", err)
	}
	product := &models.Product{
		ProductName: name,
		Stock:       stock,
		MinProduct:  minProduct,
		MaxProduct:  maxProduct,
		Price:       decimal.NewFromInt(price),
		CreatedAt:   time.Date(2024, 1, 1, 0, count, 0, 0, time.UTC),
	}
	err := db.QueryRowx(`INSERT INTO products (product_name, stock, min_product, max_product, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		product.ProductName, product.Stock, product.MinProduct, product.MaxProduct, product.Price, product.CreatedAt).Scan(&product.ID)
	if err != nil {
		t.Fatalf("could not insert product: %v", err)
	}
	return product
}
