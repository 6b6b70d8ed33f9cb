package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	database "github.com/AhmedAbdelghani28/expense-tracker-app/db"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/config"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/application"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/infrastructure"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/interfaces"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/logging"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, message)
}

type Server struct {
	router          *http.ServeMux
	log             *logrus.Logger
	dbService       *database.DBService
	categoryHandler *interfaces.CategoryHandler
	expenseHandler  *interfaces.ExpenseHandler
}

func NewServer(log *logrus.Logger, dbService *database.DBService, categoryHandler *interfaces.CategoryHandler, expenseHandler *interfaces.ExpenseHandler) *Server {
	return &Server{
		router:          http.NewServeMux(),
		log:             log,
		dbService:       dbService,
		categoryHandler: categoryHandler,
		expenseHandler:  expenseHandler,
	}
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	// CATEGORIES API
	router.Handle("POST /api/categories", interfaces.HandleErrors(s.log, "CreateCategory", s.categoryHandler.Create))
	router.Handle("GET /api/categories", interfaces.HandleErrors(s.log, "ListCategories", s.categoryHandler.List))
	router.Handle("GET /api/categories/{id}", interfaces.HandleErrors(s.log, "GetCategory", s.categoryHandler.GetByID))
	router.Handle("PUT /api/categories/{id}", interfaces.HandleErrors(s.log, "UpdateCategory", s.categoryHandler.Update))
	router.Handle("DELETE /api/categories/{id}", interfaces.HandleErrors(s.log, "DeleteCategory", s.categoryHandler.Delete))

	// EXPENSES API
	router.Handle("POST /api/expenses", interfaces.HandleErrors(s.log, "CreateExpense", s.expenseHandler.Create))
	router.Handle("GET /api/expenses", interfaces.HandleErrors(s.log, "ListExpenses", s.expenseHandler.List))
	router.Handle("GET /api/expenses/{id}", interfaces.HandleErrors(s.log, "GetExpense", s.expenseHandler.GetByID))
	router.Handle("PUT /api/expenses/{id}", interfaces.HandleErrors(s.log, "UpdateExpense", s.expenseHandler.Update))
	router.Handle("DELETE /api/expenses/{id}", interfaces.HandleErrors(s.log, "DeleteExpense", s.expenseHandler.Delete))

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	router.Handle("/", interfaces.NotFoundHandler(s.log))

	s.router = router
}

func main() {
	cfg := config.Load()
	log := logging.SetupLogging(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config.Validate")
	}

	if cfg.SchemaMode == config.SchemaModeMigrate {
		if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
			log.WithError(err).Fatal("database.RunMigrations")
		}
		log.Info("Database migrations applied")
	}

	dbService, err := database.NewDBService(cfg)
	if err != nil {
		log.WithError(err).Fatal("database.NewDBService")
	}
	defer dbService.Close()

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo, dbService)
	expenseService := application.NewExpenseService(expenseRepo, categoryRepo, dbService)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondText)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondText)

	server := NewServer(log, dbService, categoryHandler, expenseHandler)
	server.RegisterRoutes()

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        logging.RequestLogger(log, server.router),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.WithField("signal", sig.String()).Info("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server shutdown error")
		}
		cancel()
	}()

	log.Info("Starting perf on port 6060...")
	go func() {
		log.Error(http.ListenAndServe("localhost:6060", nil))
	}()

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("Server failed to start")
	}

	<-ctx.Done()
	log.Info("Server stopped gracefully")
}
