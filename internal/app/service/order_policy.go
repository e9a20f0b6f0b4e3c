package service

import (
	"github.com/shopspring/decimal"
	"github.com/ujwegh/leadmart/internal/app/models"
	"go.uber.org/multierr"
)

type boundsSource int

const (
	boundsFromCatalog boundsSource = iota
	boundsFromProCredit
)

type quantityBounds struct {
	Min    int
	Max    int
	Source boundsSource
}

// tierPolicy holds the rules that differ between regular and PRO users. It is
// selected once per order.
type tierPolicy struct {
	source     boundsSource
	offCatalog bool
	credit     *models.ProCredit
}

func policyFor(user *models.User, credit *models.ProCredit) tierPolicy {
	if user.Role == models.PRO {
		return tierPolicy{source: boundsFromProCredit, offCatalog: true, credit: credit}
	}
	return tierPolicy{source: boundsFromCatalog}
}

func (p tierPolicy) isPro() bool {
	return p.source == boundsFromProCredit
}

// bounds returns the allowed quantity range for one line. A PRO user without a
// credit record gets an empty range.
func (p tierPolicy) bounds(product *models.Product) quantityBounds {
	if p.isPro() {
		if p.credit == nil {
			return quantityBounds{Source: boundsFromProCredit}
		}
		return quantityBounds{Min: p.credit.MinProduct, Max: p.credit.MaxProduct, Source: boundsFromProCredit}
	}
	return quantityBounds{Min: product.MinProduct, Max: product.MaxProduct, Source: boundsFromCatalog}
}

// catalog is a snapshot of the products keyed by name. On duplicate names the
// first entry in listing order wins.
type catalog map[string]*models.Product

func newCatalog(products []models.Product) catalog {
	c := make(catalog, len(products))
	for i := range products {
		if _, ok := c[products[i].ProductName]; !ok {
			c[products[i].ProductName] = &products[i]
		}
	}
	return c
}

// validateCart checks every line and returns all failures together.
func (p tierPolicy) validateCart(items []models.CartItem, c catalog) error {
	var errs error
	for _, item := range items {
		product, ok := c[item.Name]
		if !ok && !p.offCatalog {
			errs = multierr.Append(errs, ProductNotFound(item.Name))
			continue
		}
		if ok {
			if product.Stock == 0 {
				errs = multierr.Append(errs, OutOfStock(item.Name))
				continue
			}
			if product.Stock < item.Quantity {
				errs = multierr.Append(errs, InsufficientStock(item.Name))
			}
		}
		b := p.bounds(product)
		if item.Quantity < b.Min {
			errs = multierr.Append(errs, MinNotMet(item.Name))
		}
		if item.Quantity > b.Max {
			errs = multierr.Append(errs, MaxExceeded(item.Name))
		}
	}
	return errs
}

// catalogTotal sums price times quantity over the lines found in the catalog.
func catalogTotal(items []models.CartItem, c catalog) (total decimal.Decimal, offCatalog bool) {
	total = decimal.Zero
	for _, item := range items {
		product, ok := c[item.Name]
		if !ok {
			offCatalog = true
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, offCatalog
}

func verifyPrice(price decimal.Decimal, items []models.CartItem, c catalog) error {
	total, offCatalog := catalogTotal(items, c)
	if offCatalog {
		if price.LessThan(total) {
			return ErrPriceMismatch
		}
		return nil
	}
	if !price.Equal(total) {
		return ErrPriceMismatch
	}
	return nil
}

// paymentPlan is how an order price is split between the wallet and the credit
// limit. Overdraw debits the wallet without a balance guard.
type paymentPlan struct {
	Debit    decimal.Decimal
	Credit   decimal.Decimal
	Overdraw decimal.Decimal
}

func (p tierPolicy) planPayment(balance decimal.Decimal, price decimal.Decimal, overdraftFallback bool) (paymentPlan, error) {
	if balance.GreaterThanOrEqual(price) {
		return paymentPlan{Debit: price}, nil
	}
	if !p.isPro() {
		return paymentPlan{}, ErrInsufficientFunds
	}
	if p.credit == nil {
		return paymentPlan{}, ErrNotPro
	}
	limit := p.credit.AmountLimit
	if balance.IsZero() && limit.LessThan(price) {
		return paymentPlan{}, ErrCreditLimitExceeded
	}
	if price.LessThanOrEqual(balance.Add(limit)) {
		debit := decimal.Max(balance, decimal.Zero)
		return paymentPlan{Debit: debit, Credit: price.Sub(debit)}, nil
	}
	if overdraftFallback {
		return paymentPlan{Overdraw: price}, nil
	}
	return paymentPlan{}, ErrCreditLimitExceeded
}
