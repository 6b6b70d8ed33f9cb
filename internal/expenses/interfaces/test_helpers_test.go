package interfaces

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newCategoryRouter(service CategoryServiceInterface) *http.ServeMux {
	log := newTestLogger()
	handler := NewCategoryHandler(service, respondJSON, respondText)

	mux := http.NewServeMux()
	mux.Handle("POST /api/categories", HandleErrors(log, "CreateCategory", handler.Create))
	mux.Handle("GET /api/categories/{id}", HandleErrors(log, "GetCategory", handler.GetByID))
	mux.Handle("GET /api/categories", HandleErrors(log, "ListCategories", handler.List))
	mux.Handle("PUT /api/categories/{id}", HandleErrors(log, "UpdateCategory", handler.Update))
	mux.Handle("DELETE /api/categories/{id}", HandleErrors(log, "DeleteCategory", handler.Delete))
	return mux
}

func newExpenseRouter(service ExpenseServiceInterface) *http.ServeMux {
	log := newTestLogger()
	handler := NewExpenseHandler(service, respondJSON, respondText)

	mux := http.NewServeMux()
	mux.Handle("POST /api/expenses", HandleErrors(log, "CreateExpense", handler.Create))
	mux.Handle("GET /api/expenses/{id}", HandleErrors(log, "GetExpense", handler.GetByID))
	mux.Handle("GET /api/expenses", HandleErrors(log, "ListExpenses", handler.List))
	mux.Handle("PUT /api/expenses/{id}", HandleErrors(log, "UpdateExpense", handler.Update))
	mux.Handle("DELETE /api/expenses/{id}", HandleErrors(log, "DeleteExpense", handler.Delete))
	return mux
}
