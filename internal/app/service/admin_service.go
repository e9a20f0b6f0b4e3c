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
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

type (
	EditUserRequest struct {
		ID     uuid.UUID
		Name   string
		Number string
		Amount decimal.Decimal
		Email  string
	}
	UserPage struct {
		Pagination
		Items []models.User
	}
	AdminService interface {
		BlockUser(ctx context.Context, userUID uuid.UUID) error
		UnblockUser(ctx context.Context, userUID uuid.UUID) error
		EditUser(ctx context.Context, req EditUserRequest) error
		UpdatePassword(ctx context.Context, adminUID *uuid.UUID, userUID uuid.UUID, password string) error
		ListUsers(ctx context.Context, page int) (*UserPage, error)
		GrantPro(ctx context.Context, credit models.ProCredit) error
	}
	AdminServiceImpl struct {
		userRepo      repository.UserRepository
		proCreditRepo repository.ProCreditRepository
		pageSize      int
	}
)

func NewAdminService(userRepo repository.UserRepository, proCreditRepo repository.ProCreditRepository, cfg config.AppConfig) *AdminServiceImpl {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		proCreditRepo: proCreditRepo,
		pageSize:      cfg.PageSize,
	}
}

func (as *AdminServiceImpl) BlockUser(ctx context.Context, userUID uuid.UUID) error {
	user, err := as.userRepo.FindByID(ctx, userUID)
	if err != nil {
		return err
	}
	switch user.Role {
	case models.ADMIN:
		return badRequest("Cannot block an admin.")
	case models.BLOCKED:
		return badRequest("User is already blocked.")
	}
	if err := as.userRepo.UpdateRole(ctx, nil, userUID, models.BLOCKED); err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	return nil
}

// UnblockUser restores a blocked user to the regular tier.
func (as *AdminServiceImpl) UnblockUser(ctx context.Context, userUID uuid.UUID) error {
	user, err := as.userRepo.FindByID(ctx, userUID)
	if err != nil {
		return err
	}
	if user.Role != models.BLOCKED {
		return badRequest("User is not blocked. Cannot perform this action.")
	}
	if err := as.userRepo.UpdateRole(ctx, nil, userUID, models.USER); err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	return nil
}

func (as *AdminServiceImpl) EditUser(ctx context.Context, req EditUserRequest) error {
	emailTaken, err := as.userRepo.ExistsOtherWithEmail(ctx, req.Email, req.ID)
	if err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	if emailTaken {
		return appErrors.NewWithCode(nil, "Email already in use!", http.StatusConflict)
	}
	nameTaken, err := as.userRepo.ExistsOtherWithName(ctx, req.Name, req.ID)
	if err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	if nameTaken {
		return appErrors.NewWithCode(nil, "Username already exists.", http.StatusConflict)
	}

	user := &models.User{
		UUID:       req.ID,
		Name:       req.Name,
		Number:     req.Number,
		TotalMoney: req.Amount,
		Email:      req.Email,
	}
	if err := as.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		appErr := appErrors.ResponseCodeError{}
		if errors.As(err, &appErr) {
			return err
		}
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	return nil
}

// UpdatePassword stores a new password for the user. A password equal to the
// current one is refused.
func (as *AdminServiceImpl) UpdatePassword(ctx context.Context, adminUID *uuid.UUID, userUID uuid.UUID, password string) error {
	if adminUID == nil {
		return appErrors.NewWithCode(nil, "Unauthorized", http.StatusUnauthorized)
	}
	admin, err := as.userRepo.FindByID(ctx, *adminUID)
	if err != nil || admin.Role != models.ADMIN {
		return appErrors.NewWithCode(err, "Unauthorized", http.StatusUnauthorized)
	}

	user, err := as.userRepo.FindByID(ctx, userUID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
		return badRequest("Password already used.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return fmt.Errorf("generate hash error: %w", err)
	}
	if err := as.userRepo.UpdatePassword(ctx, userUID, string(hash)); err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	return nil
}

func (as *AdminServiceImpl) ListUsers(ctx context.Context, page int) (*UserPage, error) {
	total, err := as.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	p := newPagination(page, as.pageSize, total)
	users, err := as.userRepo.GetUsers(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return &UserPage{Pagination: p, Items: *users}, nil
}

// GrantPro stores the PRO credit of a user and moves the user to the PRO tier.
func (as *AdminServiceImpl) GrantPro(ctx context.Context, credit models.ProCredit) error {
	if credit.MinProduct < 0 || credit.MinProduct > credit.MaxProduct || credit.AmountLimit.IsNegative() {
		return badRequest("Invalid PRO credit")
	}
	user, err := as.userRepo.FindByID(ctx, credit.UserUUID)
	if err != nil {
		return err
	}
	if user.Role == models.ADMIN || user.Role == models.BLOCKED {
		return badRequest(fmt.Sprintf("Cannot grant PRO to a %s user.", user.Role))
	}

	now := time.Now()
	credit.CreatedAt = now
	credit.UpdatedAt = now

	tx, err := as.userRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := as.proCreditRepo.Upsert(ctx, tx, &credit); err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	if err := as.userRepo.UpdateRole(ctx, tx, credit.UserUUID, models.PRO); err != nil {
		return appErrors.New(err, "An error occurred. Please try again later.")
	}
	return tx.Commit()
}

func badRequest(msg string) error {
	return appErrors.NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
}
