package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int64
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CategoryID  int64
}

type ExpenseRepository interface {
	Save(ctx context.Context, expense Expense) (*Expense, error)
	FindByID(ctx context.Context, expenseID int64) (*Expense, error)
	FindAll(ctx context.Context) ([]Expense, error)
	DeleteByID(ctx context.Context, expenseID int64) error
	WithTx(tx *sql.Tx) ExpenseRepository
}
