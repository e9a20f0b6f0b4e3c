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

// MoneyRepository stores wallet top-up requests together with the state of their
// payment proof.
type MoneyRepository interface {
	CreateMoney(ctx context.Context, money *models.Money) error
	GetMoneyByID(ctx context.Context, id int64) (*models.Money, error)
	CountByUser(ctx context.Context, userUID *uuid.UUID) (int, error)
	GetByUser(ctx context.Context, userUID *uuid.UUID, limit int, offset int) (*[]models.Money, error)
	CountByStatus(ctx context.Context, status models.MoneyStatus) (int, error)
	GetByStatus(ctx context.Context, status models.MoneyStatus, limit int, offset int) (*[]models.Money, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, id int64, from models.MoneyStatus, to models.MoneyStatus) error
	UpdateProofStatus(ctx context.Context, id int64, status models.ProofStatus) error
	CountUnverified() (int, error)
	GetUnverified(limit int, offset int) (*[]models.Money, error)
	GetDB() *sqlx.DB
}

type MoneyRepositoryImpl struct {
	db *sqlx.DB
}

func NewMoneyRepository(db *sqlx.DB) *MoneyRepositoryImpl {
	return &MoneyRepositoryImpl{db: db}
}

func (mr *MoneyRepositoryImpl) CreateMoney(ctx context.Context, money *models.Money) error {
	query := `INSERT INTO money (user_uuid, account_number, upi_id, transaction_id, amount, status, proof_status, secure_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`
	err := mr.db.QueryRowxContext(ctx, query, money.UserUUID, money.AccountNumber, money.UPIID, money.TransactionID,
		money.Amount, money.Status.String(), money.ProofStatus.String(), money.SecureURL, money.CreatedAt, money.UpdatedAt).Scan(&money.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.NewWithCode(err, "Transaction already submitted", http.StatusConflict)
		}
		return fmt.Errorf("create money: %w", err)
	}
	return nil
}

func (mr *MoneyRepositoryImpl) GetMoneyByID(ctx context.Context, id int64) (*models.Money, error) {
	query := `SELECT * FROM money WHERE id = $1;`
	money := models.Money{}
	err := mr.db.GetContext(ctx, &money, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Money request not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get money: %w", err)
	}
	return &money, nil
}

func (mr *MoneyRepositoryImpl) CountByUser(ctx context.Context, userUID *uuid.UUID) (int, error) {
	query := `SELECT count(*) FROM money WHERE user_uuid = $1;`
	var count int
	if err := mr.db.GetContext(ctx, &count, query, userUID); err != nil {
		return 0, fmt.Errorf("count user money: %w", err)
	}
	return count, nil
}

func (mr *MoneyRepositoryImpl) GetByUser(ctx context.Context, userUID *uuid.UUID, limit int, offset int) (*[]models.Money, error) {
	query := `SELECT * FROM money WHERE user_uuid = $1 ORDER BY id DESC LIMIT $2 OFFSET $3;`
	money := make([]models.Money, 0)
	err := mr.db.SelectContext(ctx, &money, query, userUID, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &money, nil
		}
		return nil, fmt.Errorf("read user money: %w", err)
	}
	return &money, nil
}

func (mr *MoneyRepositoryImpl) CountByStatus(ctx context.Context, status models.MoneyStatus) (int, error) {
	query := `SELECT count(*) FROM money WHERE status = $1;`
	var count int
	if err := mr.db.GetContext(ctx, &count, query, status.String()); err != nil {
		return 0, fmt.Errorf("count money: %w", err)
	}
	return count, nil
}

func (mr *MoneyRepositoryImpl) GetByStatus(ctx context.Context, status models.MoneyStatus, limit int, offset int) (*[]models.Money, error) {
	query := `SELECT * FROM money WHERE status = $1 ORDER BY id DESC LIMIT $2 OFFSET $3;`
	money := make([]models.Money, 0)
	err := mr.db.SelectContext(ctx, &money, query, status.String(), limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &money, nil
		}
		return nil, fmt.Errorf("read money: %w", err)
	}
	return &money, nil
}

// UpdateStatus moves a request from one review status to another. ErrNoRowsAffected
// means the request was not in the expected status.
func (mr *MoneyRepositoryImpl) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id int64, from models.MoneyStatus, to models.MoneyStatus) error {
	query := `UPDATE money SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND status = $3;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, to.String(), id, from.String())
	if err != nil {
		return fmt.Errorf("execute statement: %w", err)
	}
	return checkAffected(res)
}

func (mr *MoneyRepositoryImpl) UpdateProofStatus(ctx context.Context, id int64, status models.ProofStatus) error {
	query := `UPDATE money SET proof_status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2;`
	res, err := mr.db.ExecContext(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("update proof status: %w", err)
	}
	return checkAffected(res)
}

func (mr *MoneyRepositoryImpl) CountUnverified() (int, error) {
	query := `SELECT count(*) FROM money WHERE proof_status = 'UNVERIFIED' AND status = 'PENDING'`
	var count int
	err := mr.db.Get(&count, query)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (mr *MoneyRepositoryImpl) GetUnverified(limit int, offset int) (*[]models.Money, error) {
	query := `SELECT * FROM money WHERE proof_status = 'UNVERIFIED' AND status = 'PENDING' ORDER BY id limit $1 offset $2`
	money := make([]models.Money, 0)
	err := mr.db.Select(&money, query, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &money, nil
		}
		return nil, fmt.Errorf("read unverified money: %w", err)
	}
	return &money, nil
}

func (mr *MoneyRepositoryImpl) GetDB() *sqlx.DB {
	return mr.db
}
