package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ujwegh/leadmart/internal/app/config"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"go.uber.org/zap"
)

type (
	// MoneyRequest is a wallet top-up submitted by a user together with the proof of payment.
	MoneyRequest struct {
		AccountNumber string
		UPIID         string
		TransactionID string
		Amount        decimal.Decimal
		SecureURL     string
	}
	MoneyPage struct {
		Pagination
		Items     []models.Money
		PageTotal decimal.Decimal
	}
	MoneyService interface {
		CreateRequest(ctx context.Context, userUID *uuid.UUID, req MoneyRequest) (*models.Money, error)
		ListUserRequests(ctx context.Context, userUID *uuid.UUID, page int) (*MoneyPage, error)
		ListPending(ctx context.Context, page int) (*MoneyPage, error)
		Approve(ctx context.Context, moneyID int64) error
		Reject(ctx context.Context, moneyID int64) error
	}
	MoneyServiceImpl struct {
		moneyRepo     repository.MoneyRepository
		walletService WalletService
		proofCache    ProofCache
		proofChan     chan models.Money
		pageSize      int
	}
)

// NewMoneyService creates the service. proofChan and proofCache may be nil when
// proof checking is disabled.
func NewMoneyService(moneyRepo repository.MoneyRepository, walletService WalletService,
	proofCache ProofCache, proofChan chan models.Money, cfg config.AppConfig) *MoneyServiceImpl {
	return &MoneyServiceImpl{
		moneyRepo:     moneyRepo,
		walletService: walletService,
		proofCache:    proofCache,
		proofChan:     proofChan,
		pageSize:      cfg.PageSize,
	}
}

func (ms *MoneyServiceImpl) CreateRequest(ctx context.Context, userUID *uuid.UUID, req MoneyRequest) (*models.Money, error) {
	if !req.Amount.IsPositive() {
		msg := "Amount must be positive"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
	}
	now := time.Now()
	money := &models.Money{
		UserUUID:      *userUID,
		AccountNumber: req.AccountNumber,
		UPIID:         req.UPIID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Status:        models.PENDING,
		ProofStatus:   models.UNVERIFIED,
		SecureURL:     req.SecureURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := ms.moneyRepo.CreateMoney(ctx, money); err != nil {
		appErr := appErrors.ResponseCodeError{}
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, appErrors.New(err, "Error adding money request")
	}
	ms.publish(money)
	return money, nil
}

func (ms *MoneyServiceImpl) publish(money *models.Money) {
	if ms.proofChan == nil {
		return
	}
	select {
	case ms.proofChan <- *money:
	default:
		logger.Log.Debug("proof channel busy, parking request", zap.Int64("money_id", money.ID))
		if ms.proofCache != nil {
			ms.proofCache.AddMoney(money)
		}
	}
}

// ListUserRequests returns the user's requests, newest first.
func (ms *MoneyServiceImpl) ListUserRequests(ctx context.Context, userUID *uuid.UUID, page int) (*MoneyPage, error) {
	total, err := ms.moneyRepo.CountByUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	p := newPagination(page, ms.pageSize, total)
	items, err := ms.moneyRepo.GetByUser(ctx, userUID, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return newMoneyPage(p, *items), nil
}

func (ms *MoneyServiceImpl) ListPending(ctx context.Context, page int) (*MoneyPage, error) {
	total, err := ms.moneyRepo.CountByStatus(ctx, models.PENDING)
	if err != nil {
		return nil, err
	}
	p := newPagination(page, ms.pageSize, total)
	items, err := ms.moneyRepo.GetByStatus(ctx, models.PENDING, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return newMoneyPage(p, *items), nil
}

func newMoneyPage(p Pagination, items []models.Money) *MoneyPage {
	total := decimal.Zero
	for _, m := range items {
		total = total.Add(m.Amount)
	}
	return &MoneyPage{Pagination: p, Items: items, PageTotal: total}
}

// Approve marks a pending request approved and credits its amount to the wallet.
func (ms *MoneyServiceImpl) Approve(ctx context.Context, moneyID int64) error {
	money, err := ms.pendingMoney(ctx, moneyID)
	if err != nil {
		return err
	}
	if money.ProofStatus == models.UNREACHABLE {
		msg := "Payment proof is unreachable"
		return appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}

	tx, err := ms.moneyRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ms.moneyRepo.UpdateStatus(ctx, tx, moneyID, models.PENDING, models.APPROVED); err != nil {
		return reviewError(err)
	}
	if err := ms.walletService.Credit(ctx, tx, &money.UserUUID, money.Amount); err != nil {
		return appErrors.New(err, "Error crediting wallet")
	}
	return tx.Commit()
}

func (ms *MoneyServiceImpl) Reject(ctx context.Context, moneyID int64) error {
	if _, err := ms.pendingMoney(ctx, moneyID); err != nil {
		return err
	}

	tx, err := ms.moneyRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ms.moneyRepo.UpdateStatus(ctx, tx, moneyID, models.PENDING, models.REJECTED); err != nil {
		return reviewError(err)
	}
	return tx.Commit()
}

func (ms *MoneyServiceImpl) pendingMoney(ctx context.Context, moneyID int64) (*models.Money, error) {
	money, err := ms.moneyRepo.GetMoneyByID(ctx, moneyID)
	if err != nil {
		return nil, err
	}
	if money.Status != models.PENDING {
		return nil, reviewError(repository.ErrNoRowsAffected)
	}
	return money, nil
}

func reviewError(err error) error {
	if errors.Is(err, repository.ErrNoRowsAffected) {
		msg := "Request already reviewed"
		return appErrors.NewWithCode(err, msg, http.StatusConflict)
	}
	return appErrors.New(err, "Error updating money request")
}
