package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ujwegh/leadmart/internal/app/config"
	"github.com/ujwegh/leadmart/internal/app/handlers"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"github.com/ujwegh/leadmart/internal/app/middleware"
	"github.com/ujwegh/leadmart/internal/app/models"
	"github.com/ujwegh/leadmart/internal/app/repository"
	"github.com/ujwegh/leadmart/internal/app/router"
	"github.com/ujwegh/leadmart/internal/app/service"
	"github.com/ujwegh/leadmart/internal/app/service/clients"
	"go.uber.org/zap"
)

// @title           Swagger Docs for Leadmart API
// @version         1.0
// @description     Leadmart sells leads to registered users. Users top up their wallets, PRO users buy on credit and admins manage the catalog, the users and the top-ups.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)
	defer logger.Log.Sync()

	//setup repositories
	ts := service.NewTokenService(c)
	s := repository.NewDBStorage(c)
	ur := repository.NewUserRepository(s.DBConn)
	or := repository.NewOrderRepository(s.DBConn)
	wr := repository.NewWalletRepository(s.DBConn)
	pr := repository.NewProductRepository(s.DBConn)
	pcr := repository.NewProCreditRepository(s.DBConn)
	mr := repository.NewMoneyRepository(s.DBConn)

	// proof checking of top-ups is optional
	var proofChan chan models.Money
	var proofCache service.ProofCache
	var proofProcessor service.ProofProcessor
	if c.ProofCheckEnabled {
		proofChan = make(chan models.Money, 100)
		retry := time.Duration(c.ProofRetryExpirationSec) * time.Second
		pc := service.NewProofCache(retry, retry/2, proofChan)
		proofCache = pc
		proofProcessor = service.NewProofProcessor(mr, pc, clients.NewProofClient(c), proofChan)
	}

	//setup services
	ws := service.NewWalletService(wr)
	us := service.NewUserService(ur)
	ors := service.NewOrderService(or, ur, pcr, pr, ws, c)
	ps := service.NewProductService(pr)
	ms := service.NewMoneyService(mr, ws, proofCache, proofChan, c)
	as := service.NewAdminService(ur, pcr, c)

	// setup handlers
	h := router.Handlers{
		User:     handlers.NewUserHandler(us, ts, c.ContextTimeoutSec),
		Orders:   handlers.NewOrdersHandler(c.ContextTimeoutSec, ors),
		Balance:  handlers.NewBalanceHandler(c.ContextTimeoutSec, ws),
		Products: handlers.NewProductsHandler(c.ContextTimeoutSec, ps),
		Money:    handlers.NewMoneyHandler(c.ContextTimeoutSec, ms),
		Admin:    handlers.NewAdminHandler(c.ContextTimeoutSec, as),
	}
	am := middleware.NewAuthMiddleware(ts, us, c.ContextTimeoutSec)

	r := router.NewAppRouter(h, am)

	if proofProcessor != nil {
		go proofProcessor.ProcessProofs(serverCtx)
		go proofProcessor.ProcessUnverified()
	}

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, cancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelFunc()

		// Trigger graceful shutdown
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
		}
		serverStopCtx()
	}()

	// Run the server
	logger.Log.Info("starting server", zap.String("address", c.ServerAddr))
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()

	if err := s.DBConn.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
	}
}
