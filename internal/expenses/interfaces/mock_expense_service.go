package interfaces

import (
	"context"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type MockExpenseService struct {
	Expenses   map[int64]dto.ExpenseDTO
	Categories map[int64]dto.CategoryDTO
	NextID     int64
	Err        error
}

func NewMockExpenseService() *MockExpenseService {
	return &MockExpenseService{
		Expenses:   make(map[int64]dto.ExpenseDTO),
		Categories: make(map[int64]dto.CategoryDTO),
		NextID:     1,
	}
}

func (m *MockExpenseService) resolveCategory(expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error) {
	category, ok := m.Categories[expenseDTO.CategoryDTO.ID]
	if !ok {
		return dto.ExpenseDTO{}, expenseErrors.NewNotFoundError("Category", expenseDTO.CategoryDTO.ID)
	}
	expenseDTO.CategoryDTO = &category
	return expenseDTO, nil
}

func (m *MockExpenseService) Create(ctx context.Context, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error) {
	if m.Err != nil {
		return dto.ExpenseDTO{}, m.Err
	}
	resolved, err := m.resolveCategory(expenseDTO)
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	resolved.ID = m.NextID
	m.NextID++
	m.Expenses[resolved.ID] = resolved
	return resolved, nil
}

func (m *MockExpenseService) GetByID(ctx context.Context, expenseID int64) (dto.ExpenseDTO, error) {
	if m.Err != nil {
		return dto.ExpenseDTO{}, m.Err
	}
	expense, ok := m.Expenses[expenseID]
	if !ok {
		return dto.ExpenseDTO{}, expenseErrors.NewNotFoundError("Expense", expenseID)
	}
	return expense, nil
}

func (m *MockExpenseService) List(ctx context.Context) ([]dto.ExpenseDTO, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	expenses := make([]dto.ExpenseDTO, 0, len(m.Expenses))
	for id := int64(1); id < m.NextID; id++ {
		if expense, ok := m.Expenses[id]; ok {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseService) Update(ctx context.Context, expenseID int64, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error) {
	if m.Err != nil {
		return dto.ExpenseDTO{}, m.Err
	}
	if _, ok := m.Expenses[expenseID]; !ok {
		return dto.ExpenseDTO{}, expenseErrors.NewNotFoundError("Expense", expenseID)
	}
	resolved, err := m.resolveCategory(expenseDTO)
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	resolved.ID = expenseID
	m.Expenses[expenseID] = resolved
	return resolved, nil
}

func (m *MockExpenseService) Delete(ctx context.Context, expenseID int64) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if _, ok := m.Expenses[expenseID]; !ok {
		return "", expenseErrors.NewNotFoundError("Expense", expenseID)
	}
	delete(m.Expenses, expenseID)
	return fmt.Sprintf("Expense with id: %d deleted successfully", expenseID), nil
}
