package dto

import (
	"strings"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCategoryDTO(category domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID,
		Name: category.Name,
	}
}

func (d CategoryDTO) ToDomain() domain.Category {
	return domain.Category{
		ID:   d.ID,
		Name: d.Name,
	}
}

func (d CategoryDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("Category name must not be empty")
	}
	return nil
}
