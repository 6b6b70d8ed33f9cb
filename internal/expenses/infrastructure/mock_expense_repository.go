package infrastructure

import (
	"context"
	"database/sql"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
)

type MockExpenseRepository struct {
	Expenses map[int64]domain.Expense
	NextID   int64
	Err      error
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[int64]domain.Expense),
		NextID:   1,
	}
}

func (m *MockExpenseRepository) WithTx(tx *sql.Tx) domain.ExpenseRepository {
	return m
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if expense.ID == 0 {
		expense.ID = m.NextID
		m.NextID++
	}
	m.Expenses[expense.ID] = expense
	return &expense, nil
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	expense, ok := m.Expenses[expenseID]
	if !ok {
		return nil, nil
	}
	return &expense, nil
}

func (m *MockExpenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var expenses []domain.Expense
	for id := int64(1); id < m.NextID; id++ {
		if expense, ok := m.Expenses[id]; ok {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) DeleteByID(ctx context.Context, expenseID int64) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Expenses, expenseID)
	return nil
}
