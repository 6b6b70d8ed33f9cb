package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error)
	GetByID(ctx context.Context, categoryID int64) (dto.CategoryDTO, error)
	List(ctx context.Context) ([]dto.CategoryDTO, error)
	Update(ctx context.Context, categoryID int64, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error)
	Delete(ctx context.Context, categoryID int64) (string, error)
}

type CategoryHandler struct {
	service     CategoryServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
	respondText func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondText func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondText == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:     service,
		respondJSON: respondJSON,
		respondText: respondText,
	}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var categoryDTO dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		return expenseErrors.NewValidationError("Invalid request body")
	}
	if err := categoryDTO.Validate(); err != nil {
		return err
	}

	created, err := h.service.Create(r.Context(), categoryDTO)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusCreated, created)
	return nil
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) error {
	categoryID, err := pathID(r)
	if err != nil {
		return err
	}

	category, err := h.service.GetByID(r.Context(), categoryID)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, category)
	return nil
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, categories)
	return nil
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) error {
	categoryID, err := pathID(r)
	if err != nil {
		return err
	}

	var categoryDTO dto.CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		return expenseErrors.NewValidationError("Invalid request body")
	}
	if err := categoryDTO.Validate(); err != nil {
		return err
	}

	updated, err := h.service.Update(r.Context(), categoryID, categoryDTO)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, updated)
	return nil
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	categoryID, err := pathID(r)
	if err != nil {
		return err
	}

	message, err := h.service.Delete(r.Context(), categoryID)
	if err != nil {
		return err
	}

	h.respondText(w, http.StatusOK, message)
	return nil
}
