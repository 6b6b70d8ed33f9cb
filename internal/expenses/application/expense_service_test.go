package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/infrastructure"
)

func newExpenseService(expenseRepo *infrastructure.MockExpenseRepository, categoryRepo *infrastructure.MockCategoryRepository) *ExpenseService {
	return NewExpenseService(expenseRepo, categoryRepo, &MockTxManager{})
}

func expenseDTO(amount string, date time.Time, categoryID int64) dto.ExpenseDTO {
	parsed := decimal.RequireFromString(amount)
	return dto.ExpenseDTO{
		Amount:      &parsed,
		ExpenseDate: dto.NewDate(date),
		CategoryDTO: &dto.CategoryDTO{ID: categoryID},
	}
}

func TestCreateExpense_ResolvesCurrentCategoryName(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Groceries"}
	categoryRepo.NextID = 2
	expenseRepo := infrastructure.NewMockExpenseRepository()
	service := newExpenseService(expenseRepo, categoryRepo)

	request := expenseDTO("24.99", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 1)
	// A stale name in the nested category must never be persisted or echoed.
	request.CategoryDTO.Name = "Stale name"

	created, err := service.Create(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Groceries", created.CategoryDTO.Name)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, "2024-03-15", created.ExpenseDate.Format("2006-01-02"))
}

func TestCreateExpense_CategoryNotFoundPersistsNothing(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	expenseRepo := infrastructure.NewMockExpenseRepository()
	service := newExpenseService(expenseRepo, categoryRepo)

	_, err := service.Create(context.Background(), expenseDTO("10.00", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 42))
	assert.True(t, expenseErrors.IsNotFoundError(err))
	assert.EqualError(t, err, "Category not found with id: 42")
	assert.Empty(t, expenseRepo.Expenses)
}

func TestGetExpenseByID_NotFound(t *testing.T) {
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), infrastructure.NewMockCategoryRepository())

	_, err := service.GetByID(context.Background(), 5)
	assert.True(t, expenseErrors.IsNotFoundError(err))
	assert.EqualError(t, err, "Expense not found with id: 5")
}

func TestGetExpenseByID_RoundTripsCreatedExpense(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Travel"}
	categoryRepo.NextID = 2
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), categoryRepo)

	created, err := service.Create(context.Background(), expenseDTO("120.50", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 1))
	assert.NoError(t, err)

	fetched, err := service.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.True(t, created.Amount.Equal(*fetched.Amount))
	assert.Equal(t, created.ExpenseDate, fetched.ExpenseDate)
	assert.Equal(t, created.CategoryDTO, fetched.CategoryDTO)
}

func TestListExpenses_EmptyIsNotNil(t *testing.T) {
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), infrastructure.NewMockCategoryRepository())

	expenses, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestListExpenses_EmbedsOwningCategories(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Groceries"}
	categoryRepo.Categories[2] = domain.Category{ID: 2, Name: "Rent"}
	categoryRepo.NextID = 3
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), categoryRepo)

	_, err := service.Create(context.Background(), expenseDTO("12.30", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1))
	assert.NoError(t, err)
	_, err = service.Create(context.Background(), expenseDTO("900.00", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), 2))
	assert.NoError(t, err)

	expenses, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, expenses, 2)
	assert.Equal(t, "Groceries", expenses[0].CategoryDTO.Name)
	assert.Equal(t, "Rent", expenses[1].CategoryDTO.Name)
}

func TestUpdateExpense_MovesToAnotherCategory(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Groceries"}
	categoryRepo.Categories[2] = domain.Category{ID: 2, Name: "Travel"}
	categoryRepo.NextID = 3
	expenseRepo := infrastructure.NewMockExpenseRepository()
	service := newExpenseService(expenseRepo, categoryRepo)

	created, err := service.Create(context.Background(), expenseDTO("15.00", time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), 1))
	assert.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, expenseDTO("18.75", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), 2))
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("18.75")))
	assert.Equal(t, "Travel", updated.CategoryDTO.Name)
}

func TestUpdateExpense_NotFound(t *testing.T) {
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), infrastructure.NewMockCategoryRepository())

	_, err := service.Update(context.Background(), 3, expenseDTO("1.00", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1))
	assert.True(t, expenseErrors.IsNotFoundError(err))
	assert.EqualError(t, err, "Expense not found with id: 3")
}

func TestUpdateExpense_CategoryNotFoundLeavesExpenseUnchanged(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Groceries"}
	categoryRepo.NextID = 2
	expenseRepo := infrastructure.NewMockExpenseRepository()
	service := newExpenseService(expenseRepo, categoryRepo)

	created, err := service.Create(context.Background(), expenseDTO("15.00", time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), 1))
	assert.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID, expenseDTO("99.99", time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), 42))
	assert.True(t, expenseErrors.IsNotFoundError(err))
	assert.EqualError(t, err, "Category not found with id: 42")

	stored := expenseRepo.Expenses[created.ID]
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, int64(1), stored.CategoryID)
}

func TestDeleteExpense_SecondDeleteNotFound(t *testing.T) {
	categoryRepo := infrastructure.NewMockCategoryRepository()
	categoryRepo.Categories[1] = domain.Category{ID: 1, Name: "Groceries"}
	categoryRepo.NextID = 2
	service := newExpenseService(infrastructure.NewMockExpenseRepository(), categoryRepo)

	created, err := service.Create(context.Background(), expenseDTO("5.00", time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC), 1))
	assert.NoError(t, err)

	message, err := service.Delete(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Expense with id: 1 deleted successfully", message)

	_, err = service.Delete(context.Background(), created.ID)
	assert.True(t, expenseErrors.IsNotFoundError(err))
}
