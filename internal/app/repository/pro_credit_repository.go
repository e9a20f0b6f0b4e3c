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

type ProCreditRepository interface {
	FindByUserID(ctx context.Context, userUID uuid.UUID) (*models.ProCredit, error)
	Upsert(ctx context.Context, tx *sqlx.Tx, credit *models.ProCredit) error
}

type ProCreditRepositoryImpl struct {
	db *sqlx.DB
}

func NewProCreditRepository(db *sqlx.DB) *ProCreditRepositoryImpl {
	return &ProCreditRepositoryImpl{db: db}
}

func (pr *ProCreditRepositoryImpl) FindByUserID(ctx context.Context, userUID uuid.UUID) (*models.ProCredit, error) {
	query := `SELECT * FROM pro_credits WHERE user_uuid = $1;`
	credit := models.ProCredit{}
	err := pr.db.GetContext(ctx, &credit, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "PRO credit not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get pro credit: %w", err)
	}
	return &credit, nil
}

func (pr *ProCreditRepositoryImpl) Upsert(ctx context.Context, tx *sqlx.Tx, credit *models.ProCredit) error {
	query := `INSERT INTO pro_credits (user_uuid, min_product, max_product, amount_limit, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (user_uuid) DO UPDATE SET min_product = EXCLUDED.min_product,
			  max_product = EXCLUDED.max_product, amount_limit = EXCLUDED.amount_limit, updated_at = EXCLUDED.updated_at;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, credit.UserUUID, credit.MinProduct, credit.MaxProduct, credit.AmountLimit,
		credit.CreatedAt, credit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert pro credit: %w", err)
	}
	return nil
}
