package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

type (
	UserRepository interface {
		Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error
		FindByEmail(ctx context.Context, email string) (*models.User, error)
		FindByID(ctx context.Context, userUID uuid.UUID) (*models.User, error)
		ExistsOtherWithEmail(ctx context.Context, email string, exceptUID uuid.UUID) (bool, error)
		ExistsOtherWithName(ctx context.Context, name string, exceptUID uuid.UUID) (bool, error)
		UpdateRole(ctx context.Context, tx *sqlx.Tx, userUID uuid.UUID, role models.Role) error
		UpdateProfile(ctx context.Context, user *models.User) error
		UpdatePassword(ctx context.Context, userUID uuid.UUID, passwordHash string) error
		CountUsers(ctx context.Context) (int, error)
		GetUsers(ctx context.Context, limit int, offset int) (*[]models.User, error)
		GetDB() *sqlx.DB
	}
	UserRepositoryImpl struct {
		db *sqlx.DB
	}
)

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (ur *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT * FROM users WHERE email = $1;`
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) FindByID(ctx context.Context, userUID uuid.UUID) (*models.User, error) {
	query := `SELECT * FROM users WHERE uuid = $1;`
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) ExistsOtherWithEmail(ctx context.Context, email string, exceptUID uuid.UUID) (bool, error) {
	query := `SELECT count(*) FROM users WHERE email = $1 AND uuid <> $2;`
	var count int
	if err := ur.db.GetContext(ctx, &count, query, email, exceptUID); err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (ur *UserRepositoryImpl) ExistsOtherWithName(ctx context.Context, name string, exceptUID uuid.UUID) (bool, error) {
	query := `SELECT count(*) FROM users WHERE name = $1 AND uuid <> $2;`
	var count int
	if err := ur.db.GetContext(ctx, &count, query, name, exceptUID); err != nil {
		return false, fmt.Errorf("count users by name: %w", err)
	}
	return count > 0, nil
}

func (ur *UserRepositoryImpl) Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	query := `INSERT INTO users (uuid, name, email, number, password_hash, role, total_money, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.UUID, user.Name, user.Email, user.Number, user.PasswordHash,
		user.Role.String(), user.TotalMoney, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.New(err, "User already exists")
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (ur *UserRepositoryImpl) UpdateRole(ctx context.Context, tx *sqlx.Tx, userUID uuid.UUID, role models.Role) error {
	query := `UPDATE users SET role = $1 WHERE uuid = $2;`
	var (
		res sql.Result
		err error
	)
	if tx != nil {
		res, err = tx.ExecContext(ctx, query, role.String(), userUID)
	} else {
		res, err = ur.db.ExecContext(ctx, query, role.String(), userUID)
	}
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return checkAffected(res)
}

func (ur *UserRepositoryImpl) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = $1, number = $2, total_money = $3, email = $4 WHERE uuid = $5;`
	res, err := ur.db.ExecContext(ctx, query, user.Name, user.Number, user.TotalMoney, user.Email, user.UUID)
	if err != nil {
		if isUniqueViolation(err) {
			return appErrors.NewWithCode(err, "User already exists", http.StatusConflict)
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return checkAffected(res)
}

func (ur *UserRepositoryImpl) UpdatePassword(ctx context.Context, userUID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE uuid = $2;`
	res, err := ur.db.ExecContext(ctx, query, passwordHash, userUID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return checkAffected(res)
}

func (ur *UserRepositoryImpl) CountUsers(ctx context.Context) (int, error) {
	query := `SELECT count(*) FROM users;`
	var count int
	if err := ur.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (ur *UserRepositoryImpl) GetUsers(ctx context.Context, limit int, offset int) (*[]models.User, error) {
	query := `SELECT * FROM users ORDER BY created_at DESC, name LIMIT $1 OFFSET $2;`
	users := make([]models.User, 0)
	err := ur.db.SelectContext(ctx, &users, query, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &users, nil
		}
		return nil, fmt.Errorf("read users: %w", err)
	}
	return &users, nil
}

func (ur *UserRepositoryImpl) GetDB() *sqlx.DB {
	return ur.db
}
