package domain

import (
	"context"
	"database/sql"
)

type Category struct {
	ID   int64
	Name string
}

type CategoryRepository interface {
	Save(ctx context.Context, category Category) (*Category, error)
	FindByID(ctx context.Context, categoryID int64) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	DeleteByID(ctx context.Context, categoryID int64) error
	WithTx(tx *sql.Tx) CategoryRepository
}
