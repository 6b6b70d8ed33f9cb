package dto

import (
	"github.com/shopspring/decimal"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

func init() {
	// Amounts go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type ExpenseDTO struct {
	ID          int64            `json:"id"`
	Amount      *decimal.Decimal `json:"amount"`
	ExpenseDate Date             `json:"expenseDate"`
	CategoryDTO *CategoryDTO     `json:"categoryDto"`
}

// NewExpenseDTO embeds the already resolved category, the expense's
// CategoryID is never exposed on its own.
func NewExpenseDTO(expense domain.Expense, category domain.Category) ExpenseDTO {
	amount := expense.Amount
	categoryDTO := NewCategoryDTO(category)
	return ExpenseDTO{
		ID:          expense.ID,
		Amount:      &amount,
		ExpenseDate: NewDate(expense.ExpenseDate),
		CategoryDTO: &categoryDTO,
	}
}

// ToDomain reads only the nested category's id. Any other nested category
// fields sent by the client are ignored.
func (d ExpenseDTO) ToDomain() domain.Expense {
	expense := domain.Expense{
		ID:          d.ID,
		ExpenseDate: d.ExpenseDate.Time,
	}
	if d.Amount != nil {
		expense.Amount = *d.Amount
	}
	if d.CategoryDTO != nil {
		expense.CategoryID = d.CategoryDTO.ID
	}
	return expense
}

func (d ExpenseDTO) Validate() error {
	if d.Amount == nil {
		return errors.NewValidationError("Expense amount must be provided")
	}
	if d.ExpenseDate.IsZero() {
		return errors.NewValidationError("Expense date must be provided")
	}
	if d.CategoryDTO == nil || d.CategoryDTO.ID == 0 {
		return errors.NewValidationError("Expense category id must be provided")
	}
	return nil
}
