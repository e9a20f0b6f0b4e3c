package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	appContext "github.com/ujwegh/leadmart/internal/app/context"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
)

type (
	ProductsHandler struct {
		productService service.ProductService
		contextTimeout time.Duration
	}

	//easyjson:json
	ProductDTO struct {
		ID          int64           `json:"id"`
		ProductName string          `json:"productName"`
		Stock       int             `json:"stock"`
		MinProduct  int             `json:"minProduct"`
		MaxProduct  int             `json:"maxProduct"`
		Price       decimal.Decimal `json:"price"`
		CreatedAt   time.Time       `json:"createdAt"`
	}
	//easyjson:json
	ProductDTOSlice []ProductDTO
)

func NewProductsHandler(contextTimeoutSec int, productService service.ProductService) *ProductsHandler {
	return &ProductsHandler{
		productService: productService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetProducts godoc
// @Summary Getting the catalog
// @Description Returns every product of the catalog, newest first.
// @Tags product
// @Produce json
// @Success 200 {array} ProductDTO "Catalog"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/products [get]
func (ph *ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	products, err := ph.productService.ListProducts(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := make(ProductDTOSlice, 0, len(*products))
	for _, p := range *products {
		response = append(response, ProductDTO{
			ID:          p.ID,
			ProductName: p.ProductName,
			Stock:       p.Stock,
			MinProduct:  p.MinProduct,
			MaxProduct:  p.MaxProduct,
			Price:       p.Price,
			CreatedAt:   p.CreatedAt,
		})
	}
	rawBytes, err := response.MarshalJSON()
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

// CreateProduct godoc
// @Summary Adding a product
// @Description Adds a product to the catalog. Only available to admins.
// @Tags admin
// @Accept json
// @Produce json
// @Param product body ProductDTO true "Product"
// @Success 201 {object} SuccessResponse "Product added"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Conflict - Product already exists"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/products [post]
func (ph *ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := ProductDTO{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, badRequest(err, errMsgParseBody))
		return
	}

	product := &models.Product{
		ProductName: request.ProductName,
		Stock:       request.Stock,
		MinProduct:  request.MinProduct,
		MaxProduct:  request.MaxProduct,
		Price:       request.Price,
	}
	if err := ph.productService.CreateProduct(ctx, product); err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, "Product added successfully", http.StatusCreated)
}
