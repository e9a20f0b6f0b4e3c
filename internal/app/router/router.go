package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/ujwegh/leadmart/docs"
	"github.com/ujwegh/leadmart/internal/app/handlers"
	"github.com/ujwegh/leadmart/internal/app/middleware"
)

type Handlers struct {
	User     *handlers.UserHandler
	Orders   *handlers.OrdersHandler
	Balance  *handlers.BalanceHandler
	Products *handlers.ProductsHandler
	Money    *handlers.MoneyHandler
	Admin    *handlers.AdminHandler
}

func NewAppRouter(h Handlers, am middleware.AuthMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.ResponseLogger)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Post("/api/user/register", h.User.Register)
	r.Post("/api/user/login", h.User.Login)

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)

		r.Get("/api/products", h.Products.GetProducts)
		r.Get("/api/user/balance", h.Balance.GetBalance)

		r.Post("/api/user/orders", h.Orders.CreateOrder)
		r.Get("/api/user/orders", h.Orders.GetOrders)
		r.Get("/api/user/orders/{orderID}", h.Orders.GetOrder)

		r.Post("/api/user/money", h.Money.CreateRequest)
		r.Get("/api/user/money", h.Money.GetRequests)

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/users", h.Admin.GetUsers)
			r.Put("/users/{userID}", h.Admin.EditUser)
			r.Post("/users/{userID}/block", h.Admin.BlockUser)
			r.Post("/users/{userID}/unblock", h.Admin.UnblockUser)
			r.Put("/users/{userID}/password", h.Admin.UpdatePassword)
			r.Put("/users/{userID}/pro", h.Admin.GrantPro)

			r.Post("/products", h.Products.CreateProduct)

			r.Get("/money", h.Money.GetPending)
			r.Post("/money/{moneyID}/approve", h.Money.Approve)
			r.Post("/money/{moneyID}/reject", h.Money.Reject)
		})
	})
	return r
}
