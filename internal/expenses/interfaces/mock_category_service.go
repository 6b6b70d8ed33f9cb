package interfaces

import (
	"context"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type MockCategoryService struct {
	Categories map[int64]dto.CategoryDTO
	NextID     int64
	Err        error
}

func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{
		Categories: make(map[int64]dto.CategoryDTO),
		NextID:     1,
	}
}

func (m *MockCategoryService) Create(ctx context.Context, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error) {
	if m.Err != nil {
		return dto.CategoryDTO{}, m.Err
	}
	for _, existing := range m.Categories {
		if existing.Name == categoryDTO.Name {
			return dto.CategoryDTO{}, expenseErrors.NewConflictError(fmt.Sprintf("Category already exists with name: %s", categoryDTO.Name))
		}
	}
	categoryDTO.ID = m.NextID
	m.NextID++
	m.Categories[categoryDTO.ID] = categoryDTO
	return categoryDTO, nil
}

func (m *MockCategoryService) GetByID(ctx context.Context, categoryID int64) (dto.CategoryDTO, error) {
	if m.Err != nil {
		return dto.CategoryDTO{}, m.Err
	}
	category, ok := m.Categories[categoryID]
	if !ok {
		return dto.CategoryDTO{}, expenseErrors.NewNotFoundError("Category", categoryID)
	}
	return category, nil
}

func (m *MockCategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	categories := make([]dto.CategoryDTO, 0, len(m.Categories))
	for id := int64(1); id < m.NextID; id++ {
		if category, ok := m.Categories[id]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryService) Update(ctx context.Context, categoryID int64, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error) {
	if m.Err != nil {
		return dto.CategoryDTO{}, m.Err
	}
	existing, ok := m.Categories[categoryID]
	if !ok {
		return dto.CategoryDTO{}, expenseErrors.NewNotFoundError("Category", categoryID)
	}
	existing.Name = categoryDTO.Name
	m.Categories[categoryID] = existing
	return existing, nil
}

func (m *MockCategoryService) Delete(ctx context.Context, categoryID int64) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if _, ok := m.Categories[categoryID]; !ok {
		return "", expenseErrors.NewNotFoundError("Category", categoryID)
	}
	delete(m.Categories, categoryID)
	return fmt.Sprintf("Category with id: %d deleted successfully", categoryID), nil
}
