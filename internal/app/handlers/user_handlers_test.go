package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/models"
)

type MockUserService struct {
	mock.Mock
}
type MockTokenService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByUserEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userUID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockTokenService) GetUserEmail(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func testUser() *models.User {
	return &models.User{
		UUID:         uuid.New(),
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "passwordhash",
		Role:         models.USER,
		CreatedAt:    time.Now(),
	}
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name             string
		request          string
		mockUserService  func() *MockUserService
		mockTokenService func() *MockTokenService
		contextTimeout   time.Duration
		wantErr          bool
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Successful Login",
			request: `{"email":"alice@example.com","password":"password"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Authenticate", mock.Anything, "alice@example.com", "password").Return(testUser(), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", "alice@example.com").Return("secret-token", nil)
				return m
			},
			contextTimeout: 5 * time.Second,
			wantResponse:   "Bearer secret-token",
			wantStatusCode: http.StatusOK,
		},
		{
			name:             "Malformed Body",
			request:          `{"email":`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantErr:          true,
			wantResponse:     `{"code":400,"message":"Unable to parse body"}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:             "Missing Password",
			request:          `{"email":"alice@example.com"}`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantErr:          true,
			wantResponse:     `{"code":400,"message":"Email and password are required"}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:    "Invalid Credentials",
			request: `{"email":"alice@example.com","password":"wrong"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New("mismatch"), "Invalid email or password", http.StatusUnauthorized)
				m.On("Authenticate", mock.Anything, "alice@example.com", "wrong").Return((*models.User)(nil), err)
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantErr:          true,
			wantResponse:     `{"code":401,"message":"Invalid email or password"}`,
			wantStatusCode:   http.StatusUnauthorized,
		},
		{
			name:    "Token Failure",
			request: `{"email":"alice@example.com","password":"password"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Authenticate", mock.Anything, "alice@example.com", "password").Return(testUser(), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", "alice@example.com").Return("", errors.New("sign failed"))
				return m
			},
			contextTimeout: 5 * time.Second,
			wantErr:        true,
			wantResponse:   `{"code":500,"message":"Unable to generate token"}`,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/user/login", strings.NewReader(tt.request))
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			uh := &UserHandler{
				userService:    tt.mockUserService(),
				tokenService:   tt.mockTokenService(),
				contextTimeout: tt.contextTimeout,
			}
			uh.Login(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantErr {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			} else {
				assert.Equal(t, tt.wantResponse, w.Body.String())
				assert.Equal(t, tt.wantResponse, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name             string
		request          string
		mockUserService  func() *MockUserService
		mockTokenService func() *MockTokenService
		contextTimeout   time.Duration
		wantErr          bool
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Successful Registration",
			request: `{"name":" alice ","email":"alice@example.com","password":"password"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Create", mock.Anything, "alice", "alice@example.com", "password").Return(testUser(), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", "alice@example.com").Return("secret-token", nil)
				return m
			},
			contextTimeout: 5 * time.Second,
			wantResponse:   "Bearer secret-token",
			wantStatusCode: http.StatusOK,
		},
		{
			name:             "Missing Name",
			request:          `{"email":"alice@example.com","password":"password"}`,
			mockUserService:  func() *MockUserService { return &MockUserService{} },
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantErr:          true,
			wantResponse:     `{"code":400,"message":"Name, email and password are required"}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:    "Email Taken",
			request: `{"name":"alice","email":"alice@example.com","password":"password"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New("duplicate"), "Email already in use!", http.StatusConflict)
				m.On("Create", mock.Anything, "alice", "alice@example.com", "password").Return((*models.User)(nil), err)
				return m
			},
			mockTokenService: func() *MockTokenService { return &MockTokenService{} },
			contextTimeout:   5 * time.Second,
			wantErr:          true,
			wantResponse:     `{"code":409,"message":"Email already in use!"}`,
			wantStatusCode:   http.StatusConflict,
		},
		{
			name:    "Context Timeout",
			request: `{"name":"alice","email":"alice@example.com","password":"password"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("Create", mock.Anything, "alice", "alice@example.com", "password").Return(testUser(), nil)
				return m
			},
			mockTokenService: func() *MockTokenService {
				m := &MockTokenService{}
				m.On("GenerateToken", "alice@example.com").Return("secret-token", nil)
				return m
			},
			contextTimeout: 0,
			wantErr:        true,
			wantResponse:   `{"code":500,"message":"Timeout exceeded"}`,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/user/register", strings.NewReader(tt.request))
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			userService := tt.mockUserService()
			uh := &UserHandler{
				userService:    userService,
				tokenService:   tt.mockTokenService(),
				contextTimeout: tt.contextTimeout,
			}
			uh.Register(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantErr {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			} else {
				assert.Equal(t, tt.wantResponse, w.Body.String())
			}
			userService.AssertExpectations(t)
		})
	}
}
