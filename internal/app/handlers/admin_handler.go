package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mailru/easyjson"
	"github.com/shopspring/decimal"
	appContext "github.com/ujwegh/leadmart/internal/app/context"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
)

const errMsgInvalidAdminFields = "Invalid Fields"

type (
	AdminHandler struct {
		adminService   service.AdminService
		contextTimeout time.Duration
	}

	//easyjson:json
	UserDTO struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		Email      string          `json:"email"`
		Number     string          `json:"number"`
		Role       string          `json:"role"`
		TotalMoney decimal.Decimal `json:"totalMoney"`
		CreatedAt  time.Time       `json:"createdAt"`
	}
	//easyjson:json
	UserPageDTO struct {
		Page       int       `json:"page"`
		PageSize   int       `json:"pageSize"`
		TotalItems int       `json:"totalItems"`
		TotalPages int       `json:"totalPages"`
		Items      []UserDTO `json:"items"`
	}
	//easyjson:json
	EditUserDTO struct {
		Name   string          `json:"name"`
		Number string          `json:"number"`
		Amount decimal.Decimal `json:"amount"`
		Email  string          `json:"email"`
	}
	//easyjson:json
	PasswordDTO struct {
		Password string `json:"password"`
	}
	//easyjson:json
	ProCreditDTO struct {
		MinProduct  int             `json:"minProduct"`
		MaxProduct  int             `json:"maxProduct"`
		AmountLimit decimal.Decimal `json:"amountLimit"`
	}
)

func NewAdminHandler(contextTimeoutSec int, adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetUsers godoc
// @Summary Listing users
// @Description Returns one page of users, newest first.
// @Tags admin
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} UserPageDTO "Page of users"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid page"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/users [get]
func (ah *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	page, err := pageParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	users, err := ah.adminService.ListUsers(ctx, page)
	if err != nil {
		PrepareError(w, err)
		return
	}
	rawBytes, err := mapUserPageToDto(users).MarshalJSON()
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

// BlockUser godoc
// @Summary Blocking a user
// @Tags admin
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} SuccessResponse "User blocked"
// @Failure 400 {object} ErrorResponse "Bad Request - Admin or already blocked"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{userID}/block [post]
func (ah *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	ah.userAction(w, r, ah.adminService.BlockUser, "User blocked successfully")
}

// UnblockUser godoc
// @Summary Unblocking a user
// @Tags admin
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {object} SuccessResponse "User unblocked"
// @Failure 400 {object} ErrorResponse "Bad Request - User is not blocked"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{userID}/unblock [post]
func (ah *AdminHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	ah.userAction(w, r, ah.adminService.UnblockUser, "User unblocked successfully")
}

func (ah *AdminHandler) userAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, userUID uuid.UUID) error, successMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	userID, err := userIDParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if err := action(ctx, userID); err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, successMsg, http.StatusOK)
}

// EditUser godoc
// @Summary Editing a user
// @Description Updates the profile and the wallet balance of a user. Email and name must stay unique.
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param user body EditUserDTO true "Profile"
// @Success 200 {object} SuccessResponse "User updated"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid Fields"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Conflict - Email or name already in use"
// @Security ApiKeyAuth
// @Router /api/admin/users/{userID} [put]
func (ah *AdminHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	userID, err := userIDParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	request := EditUserDTO{}
	if err := ah.readBody(r, &request); err != nil {
		PrepareError(w, err)
		return
	}
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.TrimSpace(request.Email)
	if request.Name == "" || request.Email == "" || request.Amount.IsNegative() {
		PrepareError(w, badRequest(nil, errMsgInvalidAdminFields))
		return
	}

	err = ah.adminService.EditUser(ctx, service.EditUserRequest{
		ID:     userID,
		Name:   request.Name,
		Number: request.Number,
		Amount: request.Amount,
		Email:  request.Email,
	})
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, "User updated successfully", http.StatusOK)
}

// UpdatePassword godoc
// @Summary Changing a user's password
// @Description Sets a new password. The current password cannot be reused.
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param password body PasswordDTO true "New password"
// @Success 200 {object} SuccessResponse "Password updated"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid Fields or password already used"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{userID}/password [put]
func (ah *AdminHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	userID, err := userIDParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	request := PasswordDTO{}
	if err := ah.readBody(r, &request); err != nil {
		PrepareError(w, err)
		return
	}
	if request.Password == "" {
		PrepareError(w, badRequest(nil, errMsgInvalidAdminFields))
		return
	}

	adminUID := appContext.UserUID(r.Context())
	if err := ah.adminService.UpdatePassword(ctx, adminUID, userID, request.Password); err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, "password updated successfully", http.StatusOK)
}

// GrantPro godoc
// @Summary Granting PRO
// @Description Stores the PRO credit of a user and moves the user to the PRO tier.
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User id"
// @Param credit body ProCreditDTO true "PRO credit"
// @Success 200 {object} SuccessResponse "PRO granted"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{userID}/pro [put]
func (ah *AdminHandler) GrantPro(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	userID, err := userIDParam(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	request := ProCreditDTO{}
	if err := ah.readBody(r, &request); err != nil {
		PrepareError(w, err)
		return
	}

	err = ah.adminService.GrantPro(ctx, models.ProCredit{
		UserUUID:    userID,
		MinProduct:  request.MinProduct,
		MaxProduct:  request.MaxProduct,
		AmountLimit: request.AmountLimit,
	})
	if err != nil {
		PrepareError(w, err)
		return
	}
	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	WriteJSONSuccessResponse(w, "PRO granted successfully", http.StatusOK)
}

func (ah *AdminHandler) readBody(r *http.Request, v easyjson.Unmarshaler) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
	}
	if err := easyjson.Unmarshal(body, v); err != nil {
		return badRequest(err, errMsgParseBody)
	}
	return nil
}

func mapUserPageToDto(page *service.UserPage) UserPageDTO {
	items := make([]UserDTO, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, UserDTO{
			ID:         u.UUID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Number:     u.Number,
			Role:       u.Role.String(),
			TotalMoney: u.TotalMoney,
			CreatedAt:  u.CreatedAt,
		})
	}
	return UserPageDTO{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Items:      items,
	}
}
