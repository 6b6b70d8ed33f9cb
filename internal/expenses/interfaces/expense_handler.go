package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type ExpenseServiceInterface interface {
	Create(ctx context.Context, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error)
	GetByID(ctx context.Context, expenseID int64) (dto.ExpenseDTO, error)
	List(ctx context.Context) ([]dto.ExpenseDTO, error)
	Update(ctx context.Context, expenseID int64, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error)
	Delete(ctx context.Context, expenseID int64) (string, error)
}

type ExpenseHandler struct {
	service     ExpenseServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
	respondText func(w http.ResponseWriter, status int, message string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondText func(w http.ResponseWriter, status int, message string),
) *ExpenseHandler {
	if service == nil || respondJSON == nil || respondText == nil {
		panic("Service and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:     service,
		respondJSON: respondJSON,
		respondText: respondText,
	}
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var expenseDTO dto.ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		return expenseErrors.NewValidationError("Invalid request body")
	}
	if err := expenseDTO.Validate(); err != nil {
		return err
	}

	created, err := h.service.Create(r.Context(), expenseDTO)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusCreated, created)
	return nil
}

func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) error {
	expenseID, err := pathID(r)
	if err != nil {
		return err
	}

	expense, err := h.service.GetByID(r.Context(), expenseID)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, expense)
	return nil
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) error {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, expenses)
	return nil
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) error {
	expenseID, err := pathID(r)
	if err != nil {
		return err
	}

	var expenseDTO dto.ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		return expenseErrors.NewValidationError("Invalid request body")
	}
	if err := expenseDTO.Validate(); err != nil {
		return err
	}

	updated, err := h.service.Update(r.Context(), expenseID, expenseDTO)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, updated)
	return nil
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	expenseID, err := pathID(r)
	if err != nil {
		return err
	}

	message, err := h.service.Delete(r.Context(), expenseID)
	if err != nil {
		return err
	}

	h.respondText(w, http.StatusOK, message)
	return nil
}
