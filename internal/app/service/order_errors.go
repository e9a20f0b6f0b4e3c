package service

import "fmt"

type OrderErrorKind int

const (
	KindUnauthorized OrderErrorKind = iota + 1
	KindBlocked
	KindEmptyCart
	KindProductNotFound
	KindOutOfStock
	KindInsufficientStock
	KindMinNotMet
	KindMaxExceeded
	KindInsufficientFunds
	KindNotPro
	KindCreditLimitExceeded
	KindPriceMismatch
	KindPersistenceFailure
)

// OrderError is the failure of an order placement. Product is set for errors about
// a single cart line.
type OrderError struct {
	Kind    OrderErrorKind
	Product string
	Err     error
}

var (
	ErrUnauthorized        = &OrderError{Kind: KindUnauthorized}
	ErrBlocked             = &OrderError{Kind: KindBlocked}
	ErrEmptyCart           = &OrderError{Kind: KindEmptyCart}
	ErrInsufficientFunds   = &OrderError{Kind: KindInsufficientFunds}
	ErrNotPro              = &OrderError{Kind: KindNotPro}
	ErrCreditLimitExceeded = &OrderError{Kind: KindCreditLimitExceeded}
	ErrPriceMismatch       = &OrderError{Kind: KindPriceMismatch}
	ErrPersistenceFailure  = &OrderError{Kind: KindPersistenceFailure}
)

func ProductNotFound(name string) error {
	return &OrderError{Kind: KindProductNotFound, Product: name}
}

func OutOfStock(name string) error {
	return &OrderError{Kind: KindOutOfStock, Product: name}
}

func InsufficientStock(name string) error {
	return &OrderError{Kind: KindInsufficientStock, Product: name}
}

func MinNotMet(name string) error {
	return &OrderError{Kind: KindMinNotMet, Product: name}
}

func MaxExceeded(name string) error {
	return &OrderError{Kind: KindMaxExceeded, Product: name}
}

func PersistenceFailure(err error) error {
	return &OrderError{Kind: KindPersistenceFailure, Err: err}
}

func (e *OrderError) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return "You are not authorized to perform this action"
	case KindBlocked:
		return "You have been blocked by the admin, contact the admin to know more"
	case KindEmptyCart:
		return "No product added in the order"
	case KindProductNotFound:
		return fmt.Sprintf("Product %s not found", e.Product)
	case KindOutOfStock:
		return fmt.Sprintf("Out of stock for product %s", e.Product)
	case KindInsufficientStock:
		return fmt.Sprintf("Stock not available for %s", e.Product)
	case KindMinNotMet:
		return fmt.Sprintf("%s Minimum quantity not met", e.Product)
	case KindMaxExceeded:
		return fmt.Sprintf("%s Maximum quantity exceeded", e.Product)
	case KindInsufficientFunds:
		return "Wallet money is insufficient"
	case KindNotPro:
		return "User is not a PRO!"
	case KindCreditLimitExceeded:
		return "PRO user amount limit exceeded"
	case KindPriceMismatch:
		return "Order price does not match the products"
	case KindPersistenceFailure:
		return "Error adding order"
	default:
		return "order error"
	}
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// Is matches on kind. A target naming a product only matches errors for that product.
func (e *OrderError) Is(target error) bool {
	t, ok := target.(*OrderError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Product == "" || t.Product == e.Product
}
