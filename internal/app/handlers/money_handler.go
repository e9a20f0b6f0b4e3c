package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	appContext "github.com/ujwegh/leadmart/internal/app/context"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
)

type (
	MoneyHandler struct {
		moneyService   service.MoneyService
		contextTimeout time.Duration
	}

	//easyjson:json
	MoneyRequestDTO struct {
		AccountNumber string          `json:"accountNumber"`
		UPIID         string          `json:"upiId"`
		TransactionID string          `json:"transactionId"`
		Amount        decimal.Decimal `json:"amount"`
		SecureURL     string          `json:"secureUrl"`
	}
	//easyjson:json
	MoneyDTO struct {
		ID            int64           `json:"id"`
		UserID        string          `json:"userId"`
		AccountNumber string          `json:"accountNumber"`
		UPIID         string          `json:"upiId"`
		TransactionID string          `json:"transactionId"`
		Amount        decimal.Decimal `json:"amount"`
		Status        string          `json:"status"`
		ProofStatus   string          `json:"proofStatus"`
		SecureURL     string          `json:"secureUrl"`
		CreatedAt     time.Time       `json:"createdAt"`
	}
	//easyjson:json
	MoneyPageDTO struct {
		Page       int             `json:"page"`
		PageSize   int             `json:"pageSize"`
		TotalItems int             `json:"totalItems"`
		TotalPages int             `json:"totalPages"`
		PageTotal  decimal.Decimal `json:"pageTotal"`
		Items      []MoneyDTO      `json:"items"`
	}
)

func NewMoneyHandler(contextTimeoutSec int, moneyService service.MoneyService) *MoneyHandler {
	return &MoneyHandler{
		moneyService:   moneyService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateRequest godoc
// @Summary Submitting a top-up
// @Description Submits a wallet top-up with the payment details and a link to the payment proof.
// @Description The request stays pending until an admin approves or rejects it.
// @Tags money
// @Accept json
// @Produce json
// @Param money body MoneyRequestDTO true "Top-up"
// @Success 201 {object} SuccessResponse "Request submitted"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 409 {object} ErrorResponse "Conflict - Transaction already submitted"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/money [post]
func (mh *MoneyHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), mh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := MoneyRequestDTO{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, badRequest(err, errMsgParseBody))
		return
	}
	if strings.TrimSpace(request.AccountNumber) == "" || strings.TrimSpace(request.TransactionID) == "" ||
		strings.TrimSpace(request.SecureURL) == "" {
		PrepareError(w, badRequest(nil, errMsgInvalidFields))
		return
	}

	_, err = mh.moneyService.CreateRequest(ctx, userUID, service.MoneyRequest{
		AccountNumber: request.AccountNumber,
		UPIID:         request.UPIID,
		TransactionID: request.TransactionID,
		Amount:        request.Amount,
		SecureURL:     request.SecureURL,
	})
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, "Money request submitted successfully", http.StatusCreated)
}

// GetRequests godoc
// @Summary Getting the user's top-ups
// @Description Returns one page of the user's top-up requests, newest first.
// @Tags money
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} MoneyPageDTO "Page of requests"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid page"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/money [get]
func (mh *MoneyHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	userUID := appContext.UserUID(r.Context())
	mh.writePage(w, func(ctx context.Context) (*service.MoneyPage, error) {
		return mh.moneyService.ListUserRequests(ctx, userUID, page)
	})
}

// GetPending godoc
// @Summary Getting pending top-ups
// @Description Returns one page of the top-up requests waiting for review.
// @Tags admin
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} MoneyPageDTO "Page of requests"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid page"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/money [get]
func (mh *MoneyHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	mh.writePage(w, func(ctx context.Context) (*service.MoneyPage, error) {
		return mh.moneyService.ListPending(ctx, page)
	})
}

func (mh *MoneyHandler) writePage(w http.ResponseWriter, load func(ctx context.Context) (*service.MoneyPage, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), mh.contextTimeout)
	defer cancel()

	page, err := load(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	rawBytes, err := mapMoneyPageToDto(page).MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

// Approve godoc
// @Summary Approving a top-up
// @Description Approves a pending request and credits its amount to the user's wallet.
// @Tags admin
// @Produce json
// @Param moneyID path int true "Money request id"
// @Success 200 {object} SuccessResponse "Request approved"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 409 {object} ErrorResponse "Conflict - Request already reviewed"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Payment proof is unreachable"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/money/{moneyID}/approve [post]
func (mh *MoneyHandler) Approve(w http.ResponseWriter, r *http.Request) {
	mh.review(w, r, mh.moneyService.Approve, "Money request approved")
}

// Reject godoc
// @Summary Rejecting a top-up
// @Description Rejects a pending request. The wallet is not changed.
// @Tags admin
// @Produce json
// @Param moneyID path int true "Money request id"
// @Success 200 {object} SuccessResponse "Request rejected"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 409 {object} ErrorResponse "Conflict - Request already reviewed"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/money/{moneyID}/reject [post]
func (mh *MoneyHandler) Reject(w http.ResponseWriter, r *http.Request) {
	mh.review(w, r, mh.moneyService.Reject, "Money request rejected")
}

func (mh *MoneyHandler) review(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, moneyID int64) error, successMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), mh.contextTimeout)
	defer cancel()

	moneyID, err := moneyIDParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if err := action(ctx, moneyID); err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, successMsg, http.StatusOK)
}

func mapMoneyPageToDto(page *service.MoneyPage) MoneyPageDTO {
	items := make([]MoneyDTO, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, mapMoneyToDto(m))
	}
	return MoneyPageDTO{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		PageTotal:  page.PageTotal,
		Items:      items,
	}
}

func mapMoneyToDto(m models.Money) MoneyDTO {
	return MoneyDTO{
		ID:            m.ID,
		UserID:        m.UserUUID.String(),
		AccountNumber: m.AccountNumber,
		UPIID:         m.UPIID,
		TransactionID: m.TransactionID,
		Amount:        m.Amount,
		Status:        m.Status.String(),
		ProofStatus:   m.ProofStatus.String(),
		SecureURL:     m.SecureURL,
		CreatedAt:     m.CreatedAt,
	}
}
