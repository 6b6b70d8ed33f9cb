package infrastructure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

// MockCategoryRepository keeps categories in memory and mirrors the
// constraint behavior of the real repository: nil on absent rows, conflict
// on duplicate names.
type MockCategoryRepository struct {
	Categories map[int64]domain.Category
	NextID     int64
	Err        error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int64]domain.Category),
		NextID:     1,
	}
}

func (m *MockCategoryRepository) WithTx(tx *sql.Tx) domain.CategoryRepository {
	return m
}

func (m *MockCategoryRepository) Save(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, existing := range m.Categories {
		if existing.Name == category.Name && existing.ID != category.ID {
			return nil, expenseErrors.NewConflictError(fmt.Sprintf("Category already exists with name: %s", category.Name))
		}
	}
	if category.ID == 0 {
		category.ID = m.NextID
		m.NextID++
	}
	m.Categories[category.ID] = category
	return &category, nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	category, ok := m.Categories[categoryID]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for id := int64(1); id < m.NextID; id++ {
		if category, ok := m.Categories[id]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) DeleteByID(ctx context.Context, categoryID int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Categories, categoryID)
	return nil
}
