package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appContext "github.com/ujwegh/leadmart/internal/app/context"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
	"go.uber.org/multierr"
)

const orderPlacedMsg = "Order added successfully!"

type (
	OrdersHandler struct {
		orderService   service.OrderService
		contextTimeout time.Duration
	}

	//easyjson:json
	CartItemDTO struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	//easyjson:json
	PlaceOrderDTO struct {
		UserID   string          `json:"id"`
		Price    decimal.Decimal `json:"price"`
		Products []CartItemDTO   `json:"products"`
	}
	//easyjson:json
	OrderPlacedDTO struct {
		Success string `json:"success"`
		OrderID string `json:"orderId"`
	}
	//easyjson:json
	OrderDTO struct {
		OrderID   string          `json:"orderId"`
		Products  []CartItemDTO   `json:"products"`
		Amount    decimal.Decimal `json:"amount"`
		CreatedAt time.Time       `json:"createdAt"`
	}
	//easyjson:json
	OrderDTOSlice []OrderDTO
)

func NewOrdersHandler(contextTimeoutSec int, orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateOrder godoc
// @Summary Placing an order
// @Description Validates the cart against the catalog and the user's tier, takes the stock and charges the wallet.
// @Description PRO users may order products outside the catalog and pay beyond their balance with the credit limit.
// @Tags order
// @Accept json
// @Produce json
// @Param order body PlaceOrderDTO true "Order"
// @Success 201 {object} OrderPlacedDTO "The order has been placed"
// @Failure 400 {object} ErrorResponse "Bad Request - Unable to read body, invalid fields or empty cart"
// @Failure 402 {object} ErrorResponse "Payment Required - Wallet money is insufficient or credit limit exceeded"
// @Failure 403 {object} ErrorResponse "Forbidden - Not authorized, blocked or not a PRO user"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Cart validation failed"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/orders [post]
func (oh *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	request := PlaceOrderDTO{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, badRequest(err, errMsgParseBody))
		return
	}
	placeOrder, err := request.toPlaceOrderRequest()
	if err != nil {
		PrepareError(w, err)
		return
	}

	userUID := appContext.UserUID(r.Context())
	order, err := oh.orderService.PlaceOrder(ctx, userUID, placeOrder)
	if err != nil {
		msg, code := orderErrorResponse(err)
		if code == http.StatusInternalServerError {
			PrepareError(w, appErrors.New(err, msg))
			return
		}
		WriteJSONErrorResponse(w, msg, code)
		return
	}

	response := OrderPlacedDTO{Success: orderPlacedMsg, OrderID: order.OrderID}
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
	w.WriteHeader(http.StatusCreated)
	w.Write(rawBytes)
}

func (dto PlaceOrderDTO) toPlaceOrderRequest() (service.PlaceOrderRequest, error) {
	userID, err := uuid.Parse(dto.UserID)
	if err != nil {
		return service.PlaceOrderRequest{}, badRequest(err, errMsgInvalidFields)
	}
	if dto.Price.IsNegative() {
		return service.PlaceOrderRequest{}, badRequest(nil, errMsgInvalidFields)
	}
	items := make([]models.CartItem, 0, len(dto.Products))
	for _, p := range dto.Products {
		if strings.TrimSpace(p.Name) == "" || p.Quantity <= 0 {
			return service.PlaceOrderRequest{}, badRequest(nil, errMsgInvalidFields)
		}
		items = append(items, models.CartItem{Name: p.Name, Quantity: p.Quantity})
	}
	return service.PlaceOrderRequest{UserID: userID, Price: dto.Price, Products: items}, nil
}

// orderErrorResponse maps a placement failure to a message and status code.
// Several cart failures are reported together as one message.
func orderErrorResponse(err error) (string, int) {
	errs := multierr.Errors(err)
	if len(errs) > 1 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return strings.Join(msgs, ", "), http.StatusUnprocessableEntity
	}

	var orderErr *service.OrderError
	if !errors.As(err, &orderErr) {
		return "Error adding order", http.StatusInternalServerError
	}
	switch orderErr.Kind {
	case service.KindUnauthorized, service.KindBlocked, service.KindNotPro:
		return orderErr.Error(), http.StatusForbidden
	case service.KindEmptyCart:
		return orderErr.Error(), http.StatusBadRequest
	case service.KindInsufficientFunds, service.KindCreditLimitExceeded:
		return orderErr.Error(), http.StatusPaymentRequired
	case service.KindPersistenceFailure:
		return orderErr.Error(), http.StatusInternalServerError
	default:
		return orderErr.Error(), http.StatusUnprocessableEntity
	}
}

// GetOrders godoc
// @Summary Getting the user's orders
// @Description The handler returns the orders of the authorized user, newest first.
// @Tags order
// @Produce json
// @Success 200 {array} OrderDTO "List of orders with details"
// @Success 204 "No orders to display"
// @Failure 401 {object} ErrorResponse "Unauthorized - The user is not authorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/orders [get]
func (oh *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()

	userUID := appContext.UserUID(r.Context())

	orders, err := oh.orderService.GetOrders(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := oh.mapOrdersToOrderDtoSlice(orders)
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

// GetOrder godoc
// @Summary Getting one order
// @Description Returns an order of the authorized user by its 10 digit order number.
// @Tags order
// @Produce json
// @Param orderID path string true "Order Number"
// @Success 200 {object} OrderDTO "Order details"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Invalid order number"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/orders/{orderID} [get]
func (oh *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()

	userUID := appContext.UserUID(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, err := oh.orderService.GetOrderByID(ctx, userUID, orderID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	rawBytes, err := mapOrderToOrderDto(order).MarshalJSON()
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

func (oh *OrdersHandler) mapOrdersToOrderDtoSlice(slice *[]models.Order) OrderDTOSlice {
	responseSlice := make(OrderDTOSlice, 0, len(*slice))
	for i := range *slice {
		responseSlice = append(responseSlice, mapOrderToOrderDto(&(*slice)[i]))
	}
	return responseSlice
}

func mapOrderToOrderDto(order *models.Order) OrderDTO {
	products := make([]CartItemDTO, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, CartItemDTO{Name: p.Name, Quantity: p.Quantity})
	}
	return OrderDTO{
		OrderID:   order.OrderID,
		Products:  products,
		Amount:    order.Amount,
		CreatedAt: order.CreatedAt,
	}
}
