package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	User struct {
		UUID         uuid.UUID       `db:"uuid"`
		Name         string          `db:"name"`
		Email        string          `db:"email"`
		Number       string          `db:"number"`
		PasswordHash string          `db:"password_hash"`
		Role         Role            `db:"role"`
		TotalMoney   decimal.Decimal `db:"total_money"`
		CreatedAt    time.Time       `db:"created_at"`
	}
	ProCredit struct {
		UserUUID    uuid.UUID       `db:"user_uuid"`
		MinProduct  int             `db:"min_product"`
		MaxProduct  int             `db:"max_product"`
		AmountLimit decimal.Decimal `db:"amount_limit"`
		CreatedAt   time.Time       `db:"created_at"`
		UpdatedAt   time.Time       `db:"updated_at"`
	}
	Product struct {
		ID          int64           `db:"id"`
		ProductName string          `db:"product_name"`
		Stock       int             `db:"stock"`
		MinProduct  int             `db:"min_product"`
		MaxProduct  int             `db:"max_product"`
		Price       decimal.Decimal `db:"price"`
		CreatedAt   time.Time       `db:"created_at"`
	}
	CartItem struct {
		Name     string
		Quantity int
	}
	Order struct {
		ID        int64           `db:"id"`
		OrderID   string          `db:"order_id"`
		UserUUID  uuid.UUID       `db:"user_uuid"`
		Products  OrderProducts   `db:"products"`
		Amount    decimal.Decimal `db:"amount"`
		CreatedAt time.Time       `db:"created_at"`
	}
	Money struct {
		ID            int64           `db:"id"`
		UserUUID      uuid.UUID       `db:"user_uuid"`
		AccountNumber string          `db:"account_number"`
		UPIID         string          `db:"upi_id"`
		TransactionID string          `db:"transaction_id"`
		Amount        decimal.Decimal `db:"amount"`
		Status        MoneyStatus     `db:"status"`
		ProofStatus   ProofStatus     `db:"proof_status"`
		SecureURL     string          `db:"secure_url"`
		CreatedAt     time.Time       `db:"created_at"`
		UpdatedAt     time.Time       `db:"updated_at"`
	}
	// Wallet is the spendable state of a user: the balance and, for PRO users,
	// the remaining credit limit.
	Wallet struct {
		UserUUID    uuid.UUID           `db:"uuid"`
		TotalMoney  decimal.Decimal     `db:"total_money"`
		AmountLimit decimal.NullDecimal `db:"amount_limit"`
	}
)

type Role string

func (r Role) String() string {
	return string(r)
}

const (
	USER    Role = "USER"
	PRO     Role = "PRO"
	ADMIN   Role = "ADMIN"
	BLOCKED Role = "BLOCKED"
)

type MoneyStatus string

func (s MoneyStatus) String() string {
	return string(s)
}

const (
	PENDING  MoneyStatus = "PENDING"
	APPROVED MoneyStatus = "APPROVED"
	REJECTED MoneyStatus = "REJECTED"
)

type ProofStatus string

func (s ProofStatus) String() string {
	return string(s)
}

const (
	UNVERIFIED  ProofStatus = "UNVERIFIED"
	VERIFIED    ProofStatus = "VERIFIED"
	UNREACHABLE ProofStatus = "UNREACHABLE"
)
