package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type ExpenseRepository struct {
	db DBTX
}

func NewExpenseRepository(db DBTX) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) WithTx(tx *sql.Tx) domain.ExpenseRepository {
	return &ExpenseRepository{db: tx}
}

func (r *ExpenseRepository) Save(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	if expense.ID == 0 {
		query := `INSERT INTO expense (amount, expense_date, category_id)
              VALUES ($1, $2, $3) RETURNING id`
		err := r.db.QueryRowContext(ctx, query, expense.Amount, expense.ExpenseDate, expense.CategoryID).Scan(&expense.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, expenseErrors.NewNotFoundError("Category", expense.CategoryID)
			}
			return nil, err
		}
		return &expense, nil
	}

	query := `UPDATE expense SET amount = $1, expense_date = $2, category_id = $3
              WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, expense.Amount, expense.ExpenseDate, expense.CategoryID, expense.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, expenseErrors.NewNotFoundError("Category", expense.CategoryID)
		}
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `SELECT id, amount, expense_date, category_id FROM expense WHERE id = $1`
	var expense domain.Expense
	err := r.db.QueryRowContext(ctx, query, expenseID).Scan(&expense.ID, &expense.Amount, &expense.ExpenseDate, &expense.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, amount, expense_date, category_id FROM expense ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.Amount, &expense.ExpenseDate, &expense.CategoryID); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) DeleteByID(ctx context.Context, expenseID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expense WHERE id = $1`, expenseID)
	return err
}
