package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
)

type MockMoneyService struct {
	mock.Mock
}

func (m *MockMoneyService) CreateRequest(ctx context.Context, userUID *uuid.UUID, req service.MoneyRequest) (*models.Money, error) {
	args := m.Called(ctx, userUID, req)
	return args.Get(0).(*models.Money), args.Error(1)
}

func (m *MockMoneyService) ListUserRequests(ctx context.Context, userUID *uuid.UUID, page int) (*service.MoneyPage, error) {
	args := m.Called(ctx, userUID, page)
	return args.Get(0).(*service.MoneyPage), args.Error(1)
}

func (m *MockMoneyService) ListPending(ctx context.Context, page int) (*service.MoneyPage, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(*service.MoneyPage), args.Error(1)
}

func (m *MockMoneyService) Approve(ctx context.Context, moneyID int64) error {
	return m.Called(ctx, moneyID).Error(0)
}

func (m *MockMoneyService) Reject(ctx context.Context, moneyID int64) error {
	return m.Called(ctx, moneyID).Error(0)
}

func TestMoneyHandler_CreateRequest(t *testing.T) {
	userUID := uuid.New()
	tests := []struct {
		name             string
		requestBody      string
		serviceErr       error
		expectCall       bool
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:             "Request Submitted",
			requestBody:      `{"accountNumber":"ACC-1","upiId":"alice@upi","transactionId":"TX-1","amount":"500","secureUrl":"https://proofs.example.com/tx-1.png"}`,
			expectCall:       true,
			wantStatusCode:   http.StatusCreated,
			wantResponseBody: `{"success":"Money request submitted successfully"}`,
		},
		{
			name:             "Duplicate Transaction",
			requestBody:      `{"accountNumber":"ACC-1","upiId":"alice@upi","transactionId":"TX-1","amount":"500","secureUrl":"https://proofs.example.com/tx-1.png"}`,
			serviceErr:       appErrors.NewWithCode(errors.New("duplicate"), "Transaction already submitted", http.StatusConflict),
			expectCall:       true,
			wantStatusCode:   http.StatusConflict,
			wantResponseBody: `{"code":409,"message":"Transaction already submitted"}`,
		},
		{
			name:             "Missing Proof",
			requestBody:      `{"accountNumber":"ACC-1","transactionId":"TX-1","amount":"500"}`,
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Invalid fields!"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockMoneyService{}
			if tt.expectCall {
				expected := mock.MatchedBy(func(req service.MoneyRequest) bool {
					return req.AccountNumber == "ACC-1" && req.UPIID == "alice@upi" && req.TransactionID == "TX-1" &&
						req.Amount.Equal(decimal.NewFromInt(500)) && req.SecureURL == "https://proofs.example.com/tx-1.png"
				})
				var money *models.Money
				if tt.serviceErr == nil {
					money = &models.Money{ID: 1}
				}
				m.On("CreateRequest", mock.Anything, &userUID, expected).Return(money, tt.serviceErr)
			}

			req, err := http.NewRequest("POST", "/api/user/money", strings.NewReader(tt.requestBody))
			assert.NoError(t, err)
			req = withUser(req, userUID)
			w := httptest.NewRecorder()

			mh := &MoneyHandler{moneyService: m, contextTimeout: 5 * time.Second}
			mh.CreateRequest(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			m.AssertExpectations(t)
		})
	}
}

func TestMoneyHandler_GetRequests(t *testing.T) {
	userUID := uuid.New()
	createdAt := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	page := &service.MoneyPage{
		Pagination: service.Pagination{Page: 2, PageSize: 1, TotalItems: 3, TotalPages: 3},
		Items: []models.Money{{
			ID:            11,
			UserUUID:      userUID,
			AccountNumber: "ACC-1",
			UPIID:         "alice@upi",
			TransactionID: "TX-2",
			Amount:        decimal.NewFromInt(200),
			Status:        models.PENDING,
			ProofStatus:   models.VERIFIED,
			SecureURL:     "https://proofs.example.com/tx-2.png",
			CreatedAt:     createdAt,
		}},
		PageTotal: decimal.NewFromInt(200),
	}

	t.Run("Page Returned", func(t *testing.T) {
		m := &MockMoneyService{}
		m.On("ListUserRequests", mock.Anything, &userUID, 2).Return(page, nil)

		req, err := http.NewRequest("GET", "/api/user/money?page=2", nil)
		assert.NoError(t, err)
		req = withUser(req, userUID)
		w := httptest.NewRecorder()

		mh := &MoneyHandler{moneyService: m, contextTimeout: 5 * time.Second}
		mh.GetRequests(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"page":2,"pageSize":1,"totalItems":3,"totalPages":3,"pageTotal":"200","items":[`+
			`{"id":11,"userId":"`+userUID.String()+`","accountNumber":"ACC-1","upiId":"alice@upi","transactionId":"TX-2",`+
			`"amount":"200","status":"PENDING","proofStatus":"VERIFIED","secureUrl":"https://proofs.example.com/tx-2.png",`+
			`"createdAt":"2024-03-04T05:06:07Z"}]}`, w.Body.String())
		m.AssertExpectations(t)
	})

	t.Run("Invalid Page", func(t *testing.T) {
		m := &MockMoneyService{}

		req, err := http.NewRequest("GET", "/api/user/money?page=zero", nil)
		assert.NoError(t, err)
		req = withUser(req, userUID)
		w := httptest.NewRecorder()

		mh := &MoneyHandler{moneyService: m, contextTimeout: 5 * time.Second}
		mh.GetRequests(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":400,"message":"Invalid page"}`, w.Body.String())
		m.AssertNotCalled(t, "ListUserRequests", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMoneyHandler_GetPending(t *testing.T) {
	m := &MockMoneyService{}
	m.On("ListPending", mock.Anything, 1).Return(&service.MoneyPage{
		Pagination: service.Pagination{Page: 1, PageSize: 5},
		Items:      []models.Money{},
		PageTotal:  decimal.Zero,
	}, nil)

	req, err := http.NewRequest("GET", "/api/admin/money", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()

	mh := &MoneyHandler{moneyService: m, contextTimeout: 5 * time.Second}
	mh.GetPending(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":1,"pageSize":5,"totalItems":0,"totalPages":0,"pageTotal":"0","items":[]}`, w.Body.String())
	m.AssertExpectations(t)
}

func TestMoneyHandler_Review(t *testing.T) {
	tests := []struct {
		name             string
		moneyID          string
		action           string
		serviceErr       error
		expectCall       bool
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:             "Approved",
			moneyID:          "11",
			action:           "Approve",
			expectCall:       true,
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"success":"Money request approved"}`,
		},
		{
			name:             "Unreachable Proof",
			moneyID:          "11",
			action:           "Approve",
			serviceErr:       appErrors.NewWithCode(errors.New("unreachable"), "Payment proof is unreachable", http.StatusUnprocessableEntity),
			expectCall:       true,
			wantStatusCode:   http.StatusUnprocessableEntity,
			wantResponseBody: `{"code":422,"message":"Payment proof is unreachable"}`,
		},
		{
			name:             "Rejected",
			moneyID:          "11",
			action:           "Reject",
			expectCall:       true,
			wantStatusCode:   http.StatusOK,
			wantResponseBody: `{"success":"Money request rejected"}`,
		},
		{
			name:             "Already Reviewed",
			moneyID:          "11",
			action:           "Reject",
			serviceErr:       appErrors.NewWithCode(errors.New("no rows"), "Request already reviewed", http.StatusConflict),
			expectCall:       true,
			wantStatusCode:   http.StatusConflict,
			wantResponseBody: `{"code":409,"message":"Request already reviewed"}`,
		},
		{
			name:             "Invalid ID",
			moneyID:          "eleven",
			action:           "Approve",
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Invalid money request id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockMoneyService{}
			if tt.expectCall {
				m.On(tt.action, mock.Anything, int64(11)).Return(tt.serviceErr)
			}

			req, err := http.NewRequest("POST", "/api/admin/money/"+tt.moneyID, nil)
			assert.NoError(t, err)
			req = withURLParam(req, "moneyID", tt.moneyID)
			w := httptest.NewRecorder()

			mh := &MoneyHandler{moneyService: m, contextTimeout: 5 * time.Second}
			if tt.action == "Approve" {
				mh.Approve(w, req)
			} else {
				mh.Reject(w, req)
			}

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			m.AssertExpectations(t)
		})
	}
}
