package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
)

type (
	UserBalance struct {
		TotalMoney  decimal.Decimal
		AmountLimit decimal.Decimal
		HasCredit   bool
	}
	WalletService interface {
		GetWallet(ctx context.Context, userUID *uuid.UUID) (*models.Wallet, error)
		GetBalance(ctx context.Context, uid *uuid.UUID) (*UserBalance, error)
		Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
		Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
		Overdraw(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
		ChargeCreditLimit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error
	}
	WalletServiceImpl struct {
		walletRepo repository.WalletRepository
	}
)

func NewWalletService(walletRepo repository.WalletRepository) *WalletServiceImpl {
	return &WalletServiceImpl{walletRepo: walletRepo}
}

func (ws *WalletServiceImpl) GetWallet(ctx context.Context, userUID *uuid.UUID) (*models.Wallet, error) {
	wallet, err := ws.walletRepo.GetWallet(ctx, userUID)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, appErrors.New(err, "get wallet")
	}
	return wallet, nil
}

func (ws *WalletServiceImpl) GetBalance(ctx context.Context, uid *uuid.UUID) (*UserBalance, error) {
	wallet, err := ws.GetWallet(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &UserBalance{
		TotalMoney:  wallet.TotalMoney,
		AmountLimit: wallet.AmountLimit.Decimal,
		HasCredit:   wallet.AmountLimit.Valid,
	}, nil
}

func (ws *WalletServiceImpl) Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	return ws.walletRepo.Credit(ctx, tx, userUID, amount)
}

func (ws *WalletServiceImpl) Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	return ws.walletRepo.Debit(ctx, tx, userUID, amount)
}

func (ws *WalletServiceImpl) Overdraw(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	return ws.walletRepo.Overdraw(ctx, tx, userUID, amount)
}

func (ws *WalletServiceImpl) ChargeCreditLimit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount decimal.Decimal) error {
	return ws.walletRepo.ChargeCreditLimit(ctx, tx, userUID, amount)
}
