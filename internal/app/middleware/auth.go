package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	appContext "github.com/ujwegh/leadmart/internal/app/context"
	"github.com/ujwegh/leadmart/internal/app/handlers"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/service"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	tokenService   service.TokenService
	userService    service.UserService
	contextTimeout time.Duration
}

func NewAuthMiddleware(tokenService service.TokenService, userService service.UserService, contextTimeoutSec int) AuthMiddleware {
	return AuthMiddleware{
		tokenService:   tokenService,
		userService:    userService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Authenticate resolves the bearer token to a user and stores its uid and role in the request context.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), am.contextTimeout)
		defer cancel()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}

		userEmail, err := am.tokenService.GetUserEmail(token)
		if err != nil {
			logger.Log.Error("failed to get user email", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := am.userService.GetByUserEmail(ctx, userEmail)
		if err != nil {
			logger.Log.Error("failed to get user", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: User not found", http.StatusUnauthorized)
			return
		}

		err = appContext.GetContextError(ctx)
		if err != nil {
			handlers.PrepareError(w, err)
			return
		}

		reqCtx := appContext.WithUserUID(r.Context(), &user.UUID)
		reqCtx = appContext.WithUserRole(reqCtx, user.Role)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if appContext.UserRole(r.Context()) != models.ADMIN {
			handlers.WriteJSONErrorResponse(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
