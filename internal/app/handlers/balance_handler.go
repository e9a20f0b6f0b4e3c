package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	appContext "github.com/ujwegh/leadmart/internal/app/context"
	"github.com/ujwegh/leadmart/internal/app/service"
)

type (
	BalanceHandler struct {
		walletService  service.WalletService
		contextTimeout time.Duration
	}

	//easyjson:json
	BalanceDto struct {
		TotalMoney  decimal.Decimal  `json:"totalMoney"`
		AmountLimit *decimal.Decimal `json:"amountLimit,omitempty"`
	}
)

func NewBalanceHandler(contextTimeoutSec int, walletService service.WalletService) *BalanceHandler {
	return &BalanceHandler{
		walletService:  walletService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBalance godoc
// @Summary Getting the wallet
// @Description Returns the wallet balance of the user and, for PRO users, the remaining credit limit.
// @Tags balance
// @Produce json
// @Success 200 {object} BalanceDto "Wallet"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/balance [get]
func (bh *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	balance, err := bh.walletService.GetBalance(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	balanceDto := BalanceDto{TotalMoney: balance.TotalMoney}
	if balance.HasCredit {
		balanceDto.AmountLimit = &balance.AmountLimit
	}
	json, err := balanceDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal json: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(json)
}
