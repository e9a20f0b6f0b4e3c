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

const maxOrderIDAttempts = 5

type PlaceOrderRequest struct {
	UserID   uuid.UUID
	Price    decimal.Decimal
	Products []models.CartItem
}

type OrderService interface {
	PlaceOrder(ctx context.Context, callerUID *uuid.UUID, req PlaceOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, userUID *uuid.UUID, orderID string) (*models.Order, error)
	GetOrders(ctx context.Context, uid *uuid.UUID) (*[]models.Order, error)
}

type OrderServiceImpl struct {
	orderRepo         repository.OrderRepository
	userRepo          repository.UserRepository
	proCreditRepo     repository.ProCreditRepository
	productRepo       repository.ProductRepository
	walletService     WalletService
	verifyPrice       bool
	overdraftFallback bool
	newOrderID        func(now time.Time) (string, error)
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository,
	proCreditRepo repository.ProCreditRepository, productRepo repository.ProductRepository,
	walletService WalletService, cfg config.AppConfig) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:         orderRepo,
		userRepo:          userRepo,
		proCreditRepo:     proCreditRepo,
		productRepo:       productRepo,
		walletService:     walletService,
		verifyPrice:       cfg.VerifyOrderPrice,
		overdraftFallback: cfg.ProOverdraftFallback,
		newOrderID:        newOrderID,
	}
}

// PlaceOrder validates the cart against the catalog and the requester's tier, then
// creates the order, takes the stock and settles the payment in one transaction.
// Nothing is written when any check fails.
func (os *OrderServiceImpl) PlaceOrder(ctx context.Context, callerUID *uuid.UUID, req PlaceOrderRequest) (*models.Order, error) {
	if callerUID == nil || *callerUID != req.UserID {
		return nil, ErrUnauthorized
	}
	user, err := os.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, os.persistenceFailure("find user", err)
	}
	if user.Role == models.BLOCKED {
		return nil, ErrBlocked
	}

	var credit *models.ProCredit
	if user.Role == models.PRO {
		credit, err = os.proCreditRepo.FindByUserID(ctx, user.UUID)
		if err != nil && !isNotFound(err) {
			return nil, os.persistenceFailure("find pro credit", err)
		}
	}

	if len(req.Products) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := os.productRepo.ListAll(ctx)
	if err != nil {
		return nil, os.persistenceFailure("list products", err)
	}
	snapshot := newCatalog(*products)

	policy := policyFor(user, credit)
	if err := policy.validateCart(req.Products, snapshot); err != nil {
		return nil, err
	}
	if os.verifyPrice {
		if err := verifyPrice(req.Price, req.Products, snapshot); err != nil {
			return nil, err
		}
	}

	plan, err := policy.planPayment(user.TotalMoney, req.Price, os.overdraftFallback)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		now := time.Now()
		orderID, err := os.newOrderID(now)
		if err != nil {
			return nil, os.persistenceFailure("generate order id", err)
		}
		order := &models.Order{
			OrderID:   orderID,
			UserUUID:  user.UUID,
			Products:  models.NewOrderProducts(req.Products),
			Amount:    req.Price,
			CreatedAt: now,
		}
		err = os.settle(ctx, order, snapshot, plan, policy)
		if err == nil {
			return order, nil
		}
		if errors.Is(err, repository.ErrDuplicateOrderID) && attempt < maxOrderIDAttempts {
			logger.Log.Warn("order id already taken, retrying", zap.String("orderID", orderID), zap.Int("attempt", attempt))
			continue
		}
		var orderErr *OrderError
		if errors.As(err, &orderErr) {
			return nil, err
		}
		return nil, os.persistenceFailure("settle order", err)
	}
}

func (os *OrderServiceImpl) settle(ctx context.Context, order *models.Order, snapshot catalog, plan paymentPlan, policy tierPolicy) error {
	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := os.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return err
	}

	for _, line := range order.Products {
		if _, ok := snapshot[line.Name]; !ok {
			continue
		}
		err := os.productRepo.DecrementStock(ctx, tx, line.Name, line.Quantity)
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return InsufficientStock(line.Name)
		}
		if err != nil {
			return err
		}
	}

	if plan.Debit.IsPositive() {
		err := os.walletService.Debit(ctx, tx, &order.UserUUID, plan.Debit)
		if errors.Is(err, repository.ErrNoRowsAffected) {
			if policy.isPro() {
				return ErrCreditLimitExceeded
			}
			return ErrInsufficientFunds
		}
		if err != nil {
			return err
		}
	}
	if plan.Credit.IsPositive() {
		err := os.walletService.ChargeCreditLimit(ctx, tx, &order.UserUUID, plan.Credit)
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrCreditLimitExceeded
		}
		if err != nil {
			return err
		}
	}
	if plan.Overdraw.IsPositive() {
		if err := os.walletService.Overdraw(ctx, tx, &order.UserUUID, plan.Overdraw); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (os *OrderServiceImpl) persistenceFailure(op string, err error) error {
	logger.Log.Error("order placement failed", zap.String("op", op), zap.Error(err))
	return PersistenceFailure(fmt.Errorf("%s: %w", op, err))
}

func (os *OrderServiceImpl) GetOrderByID(ctx context.Context, userUID *uuid.UUID, orderID string) (*models.Order, error) {
	if !ValidOrderID(orderID) {
		msg := "Invalid order number"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusUnprocessableEntity)
	}
	order, err := os.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if userUID == nil || order.UserUUID != *userUID {
		msg := "Order not found"
		return nil, appErrors.NewWithCode(errors.New(msg), msg, http.StatusNotFound)
	}
	return order, nil
}

func (os *OrderServiceImpl) GetOrders(ctx context.Context, uid *uuid.UUID) (*[]models.Order, error) {
	orders, err := os.orderRepo.GetOrdersByUserUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func isNotFound(err error) bool {
	appErr := appErrors.ResponseCodeError{}
	return errors.As(err, &appErr) && appErr.Code() == http.StatusNotFound
}
