package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

// WalletRepository mutates the spendable amounts of a user: the wallet balance kept
// on the user row and the PRO credit limit. Guarded operations return
// ErrNoRowsAffected when the amount is not available.
type WalletRepository interface {
	GetWallet(ctx context.Context, userUID *uuid.UUID) (*models.Wallet, error)
	Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
	Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
	Overdraw(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
	ChargeCreditLimit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
}

type WalletRepositoryImpl struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepositoryImpl {
	return &WalletRepositoryImpl{db: db}
}

func (wr *WalletRepositoryImpl) GetWallet(ctx context.Context, userUID *uuid.UUID) (*models.Wallet, error) {
	query := `SELECT u.uuid, u.total_money, pc.amount_limit
			  FROM users u LEFT JOIN pro_credits pc ON pc.user_uuid = u.uuid
			  WHERE u.uuid = $1;`
	wallet := models.Wallet{}
	err := wr.db.GetContext(ctx, &wallet, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Wallet not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &wallet, nil
}

func (wr *WalletRepositoryImpl) Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE users SET total_money = total_money + $1 WHERE uuid = $2;`
	res, err := tx.ExecContext(ctx, query, amount, userUID)
	if err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	return checkAffected(res)
}

func (wr *WalletRepositoryImpl) Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE users SET total_money = total_money - $1 WHERE uuid = $2 AND total_money >= $1;`
	res, err := tx.ExecContext(ctx, query, amount, userUID)
	if err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	return checkAffected(res)
}

// Overdraw debits without checking the balance; the result may be negative.
func (wr *WalletRepositoryImpl) Overdraw(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE users SET total_money = total_money - $1 WHERE uuid = $2;`
	res, err := tx.ExecContext(ctx, query, amount, userUID)
	if err != nil {
		return fmt.Errorf("overdraw: %w", err)
	}
	return checkAffected(res)
}

func (wr *WalletRepositoryImpl) ChargeCreditLimit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE pro_credits SET amount_limit = amount_limit - $1, updated_at = CURRENT_TIMESTAMP
			  WHERE user_uuid = $2 AND amount_limit >= $1;`
	res, err := tx.ExecContext(ctx, query, amount, userUID)
	if err != nil {
		return fmt.Errorf("charge credit limit: %w", err)
	}
	return checkAffected(res)
}
