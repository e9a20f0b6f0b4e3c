package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appContext "github.com/ujwegh/leadmart/internal/app/context"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
)

type (
	UserHandler struct {
		userService    service.UserService
		tokenService   service.TokenService
		contextTimeout time.Duration
	}
	//easyjson:json
	UserLoginDto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	//easyjson:json
	UserRegisterDto struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

func NewUserHandler(userService service.UserService, tokenService service.TokenService, contextTimeoutSec int) *UserHandler {
	return &UserHandler{
		userService:    userService,
		tokenService:   tokenService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Register godoc
// @Summary User registration
// @Description Registers a user with a name, an email and a password. The email must be unique.
// @Description After successful registration the user is authenticated automatically.
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRegisterDto true "User Registration Information"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 409 {object} ErrorResponse "Conflict - Email already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/user/register [post]
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	registerDto := UserRegisterDto{}
	err = registerDto.UnmarshalJSON(body)
	if err != nil {
		PrepareError(w, badRequest(err, errMsgParseBody))
		return
	}

	registerDto.Name = strings.TrimSpace(registerDto.Name)
	registerDto.Email = strings.TrimSpace(registerDto.Email)
	if registerDto.Name == "" || registerDto.Email == "" || registerDto.Password == "" {
		PrepareError(w, badRequest(nil, "Name, email and password are required"))
		return
	}

	user, err := uh.userService.Create(ctx, registerDto.Name, registerDto.Email, registerDto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}

	token, err := uh.generateToken(user)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	bearerToken := fmt.Sprintf("Bearer %s", token)
	w.Header().Add("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", bearerToken)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user using an email/password pair and returns a bearer token if successful.
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserLoginDto true "User Login Credentials"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request - Unable to read body or parse body or email and password are required"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid login credentials"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Unable to generate token"
// @Router /api/user/login [post]
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	loginDto := UserLoginDto{}
	err = loginDto.UnmarshalJSON(body)
	if err != nil {
		PrepareError(w, badRequest(err, errMsgParseBody))
		return
	}

	if loginDto.Email == "" || loginDto.Password == "" {
		PrepareError(w, badRequest(nil, "Email and password are required"))
		return
	}

	user, err := uh.userService.Authenticate(ctx, loginDto.Email, loginDto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}

	token, err := uh.generateToken(user)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	bearerToken := fmt.Sprintf("Bearer %s", token)
	w.Header().Add("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", bearerToken)
}

func (uh *UserHandler) generateToken(user *models.User) (string, error) {
	token, err := uh.tokenService.GenerateToken(user.Email)
	if err != nil {
		return "", appErrors.NewWithCode(err, "Unable to generate token", http.StatusInternalServerError)
	}
	return token, nil
}
