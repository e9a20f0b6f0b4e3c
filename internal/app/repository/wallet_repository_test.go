package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository/sqlitetest"
)

func TestWalletRepositoryImpl_GetWallet(t *testing.T) {
	db := sqlitetest.NewDB(t)
	repo := NewWalletRepository(db)
	plain := sqlitetest.InsertUser(t, db, "plain", models.USER, 40)
	pro := sqlitetest.InsertUser(t, db, "pro", models.PRO, 10)
	sqlitetest.InsertProCredit(t, db, pro.UUID, 1, 10, 500)

	w, err := repo.GetWallet(context.Background(), &plain.UUID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(w.TotalMoney))
	assert.False(t, w.AmountLimit.Valid, "users without credit have no limit")

	w, err = repo.GetWallet(context.Background(), &pro.UUID)
	require.NoError(t, err)
	assert.True(t, w.AmountLimit.Valid)
	assert.True(t, decimal.NewFromInt(500).Equal(w.AmountLimit.Decimal))

	missing := uuid.New()
	_, err = repo.GetWallet(context.Background(), &missing)
	assert.Error(t, err)
}

func TestWalletRepositoryImpl_Mutations(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		limit     int64
		apply     func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error
		wantErr   error
		wantMoney int64
		wantLimit int64
	}{
		{
			name:    "Credit adds to balance",
			balance: 10, limit: 0,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error { return repo.Credit(context.Background(), tx, uid, decimal.NewFromInt(15)) }
			},
			wantMoney: 25, wantLimit: 0,
		},
		{
			name:    "Debit within balance",
			balance: 100, limit: 0,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error { return repo.Debit(context.Background(), tx, uid, decimal.NewFromInt(100)) }
			},
			wantMoney: 0, wantLimit: 0,
		},
		{
			name:    "Debit over balance is refused",
			balance: 50, limit: 0,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error { return repo.Debit(context.Background(), tx, uid, decimal.NewFromInt(51)) }
			},
			wantErr:   ErrNoRowsAffected,
			wantMoney: 50, wantLimit: 0,
		},
		{
			name:    "Overdraw goes negative",
			balance: 20, limit: 0,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error { return repo.Overdraw(context.Background(), tx, uid, decimal.NewFromInt(50)) }
			},
			wantMoney: -30, wantLimit: 0,
		},
		{
			name:    "Charge credit limit",
			balance: 0, limit: 300,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error {
					return repo.ChargeCreditLimit(context.Background(), tx, uid, decimal.NewFromInt(120))
				}
			},
			wantMoney: 0, wantLimit: 180,
		},
		{
			name:    "Charge over credit limit is refused",
			balance: 0, limit: 100,
			apply: func(repo *WalletRepositoryImpl, uid *uuid.UUID) func(tx *sqlx.Tx) error {
				return func(tx *sqlx.Tx) error {
					return repo.ChargeCreditLimit(context.Background(), tx, uid, decimal.NewFromInt(101))
				}
			},
			wantErr:   ErrNoRowsAffected,
			wantMoney: 0, wantLimit: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := sqlitetest.NewDB(t)
			repo := NewWalletRepository(db)
			user := sqlitetest.InsertUser(t, db, "user", models.PRO, tt.balance)
			sqlitetest.InsertProCredit(t, db, user.UUID, 0, 10, tt.limit)

			tx, err := db.Beginx()
			require.NoError(t, err)
			err = tt.apply(repo, &user.UUID)(tx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, tx.Rollback())
			} else {
				require.NoError(t, err)
				require.NoError(t, tx.Commit())
			}

			w, err := repo.GetWallet(context.Background(), &user.UUID)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.wantMoney).Equal(w.TotalMoney), "balance %s", w.TotalMoney)
			assert.True(t, decimal.NewFromInt(tt.wantLimit).Equal(w.AmountLimit.Decimal), "limit %s", w.AmountLimit.Decimal)
		})
	}
}
