package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	orderIDPayload    = 1_000_000_000
	orderIDRandomSpan = 1_000_000
)

// newOrderID returns a 10 digit order number: nine digits taken from the time
// plus a random offset, followed by a Luhn check digit.
func newOrderID(now time.Time) (string, error) {
	offset, err := rand.Int(rand.Reader, big.NewInt(orderIDRandomSpan))
	if err != nil {
		return "", fmt.Errorf("random offset: %w", err)
	}
	payload := (now.UnixMilli() + offset.Int64()) % orderIDPayload
	_, orderID, err := goluhn.Calculate(fmt.Sprintf("%09d", payload))
	if err != nil {
		return "", fmt.Errorf("luhn digit: %w", err)
	}
	return orderID, nil
}

// ValidOrderID reports whether s has the order number format.
func ValidOrderID(s string) bool {
	if len(s) != 10 {
		return false
	}
	return goluhn.Validate(s) == nil
}
