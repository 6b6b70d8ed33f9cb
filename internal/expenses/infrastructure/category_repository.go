package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) WithTx(tx *sql.Tx) domain.CategoryRepository {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if category.ID == 0 {
		query := `INSERT INTO category (name) VALUES ($1) RETURNING id`
		err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, expenseErrors.NewConflictError(fmt.Sprintf("Category already exists with name: %s", category.Name))
			}
			return nil, err
		}
		return &category, nil
	}

	query := `UPDATE category SET name = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, expenseErrors.NewConflictError(fmt.Sprintf("Category already exists with name: %s", category.Name))
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT id, name FROM category WHERE id = $1`
	var category domain.Category
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM category ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, categoryID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, categoryID)
	if err != nil && isForeignKeyViolation(err) {
		return expenseErrors.NewConflictError(fmt.Sprintf("Category with id: %d has expenses and cannot be deleted", categoryID))
	}
	return err
}
