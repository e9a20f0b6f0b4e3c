package models

import (
	"database/sql/driver"
	"fmt"
)

//easyjson:json
type OrderProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderProducts is the denormalized cart stored with an order as a JSON column.
//
//easyjson:json
type OrderProducts []OrderProduct

func NewOrderProducts(items []CartItem) OrderProducts {
	products := make(OrderProducts, 0, len(items))
	for _, item := range items {
		products = append(products, OrderProduct{Name: item.Name, Quantity: item.Quantity})
	}
	return products
}

func (p OrderProducts) Value() (driver.Value, error) {
	raw, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal order products: %w", err)
	}
	return string(raw), nil
}

func (p *OrderProducts) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported order products type %T", src)
	}
	return p.UnmarshalJSON(raw)
}
