package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context) (*[]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).(*[]models.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func TestProductsHandler_GetProducts(t *testing.T) {
	createdAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	m := &MockProductService{}
	m.On("ListProducts", mock.Anything).Return(&[]models.Product{{
		ID:          7,
		ProductName: "Leads",
		Stock:       500,
		MinProduct:  10,
		MaxProduct:  100,
		Price:       decimal.NewFromInt(10),
		CreatedAt:   createdAt,
	}}, nil)

	req, err := http.NewRequest("GET", "/api/products", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()

	ph := &ProductsHandler{productService: m, contextTimeout: 5 * time.Second}
	ph.GetProducts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":7,"productName":"Leads","stock":500,"minProduct":10,"maxProduct":100,"price":"10","createdAt":"2024-05-06T07:08:09Z"}]`, w.Body.String())
}

func TestProductsHandler_CreateProduct(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      string
		serviceErr       error
		expectCall       bool
		wantStatusCode   int
		wantResponseBody string
	}{
		{
			name:             "Product Added",
			requestBody:      `{"productName":"Leads","stock":500,"minProduct":10,"maxProduct":100,"price":"9.99"}`,
			expectCall:       true,
			wantStatusCode:   http.StatusCreated,
			wantResponseBody: `{"success":"Product added successfully"}`,
		},
		{
			name:             "Duplicate Product",
			requestBody:      `{"productName":"Leads","stock":500,"minProduct":10,"maxProduct":100,"price":"9.99"}`,
			serviceErr:       appErrors.NewWithCode(errors.New("duplicate"), "Product already exists", http.StatusConflict),
			expectCall:       true,
			wantStatusCode:   http.StatusConflict,
			wantResponseBody: `{"code":409,"message":"Product already exists"}`,
		},
		{
			name:             "Malformed Body",
			requestBody:      `[`,
			wantStatusCode:   http.StatusBadRequest,
			wantResponseBody: `{"code":400,"message":"Unable to parse body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockProductService{}
			if tt.expectCall {
				m.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
					return p.ProductName == "Leads" && p.Stock == 500 && p.MinProduct == 10 &&
						p.MaxProduct == 100 && p.Price.Equal(decimal.RequireFromString("9.99"))
				})).Return(tt.serviceErr)
			}

			req, err := http.NewRequest("POST", "/api/admin/products", strings.NewReader(tt.requestBody))
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			ph := &ProductsHandler{productService: m, contextTimeout: 5 * time.Second}
			ph.CreateProduct(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponseBody, w.Body.String())
			m.AssertExpectations(t)
		})
	}
}
