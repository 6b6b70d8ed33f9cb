package application

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

type ExpenseService struct {
	repo         domain.ExpenseRepository
	categoryRepo domain.CategoryRepository
	tx           TxManager
}

func NewExpenseService(repo domain.ExpenseRepository, categoryRepo domain.CategoryRepository, tx TxManager) *ExpenseService {
	return &ExpenseService{repo: repo, categoryRepo: categoryRepo, tx: tx}
}

// Create resolves the referenced category and persists the expense in one
// transaction, so a category vanishing mid-request leaves no partial write.
func (s *ExpenseService) Create(ctx context.Context, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error) {
	var created dto.ExpenseDTO
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		expenseRepo := s.repo.WithTx(tx)
		categoryRepo := s.categoryRepo.WithTx(tx)

		expense := expenseDTO.ToDomain()
		expense.ID = 0

		category, err := categoryRepo.FindByID(ctx, expense.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return expenseErrors.NewNotFoundError("Category", expense.CategoryID)
		}

		saved, err := expenseRepo.Save(ctx, expense)
		if err != nil {
			return err
		}
		created = dto.NewExpenseDTO(*saved, *category)
		return nil
	})
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	return created, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, expenseID int64) (dto.ExpenseDTO, error) {
	expense, err := s.repo.FindByID(ctx, expenseID)
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	if expense == nil {
		return dto.ExpenseDTO{}, expenseErrors.NewNotFoundError("Expense", expenseID)
	}

	category, err := s.categoryRepo.FindByID(ctx, expense.CategoryID)
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	if category == nil {
		return dto.ExpenseDTO{}, fmt.Errorf("expense %d references missing category %d", expense.ID, expense.CategoryID)
	}
	return dto.NewExpenseDTO(*expense, *category), nil
}

func (s *ExpenseService) List(ctx context.Context) ([]dto.ExpenseDTO, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[int64]domain.Category, len(categories))
	for _, category := range categories {
		categoriesByID[category.ID] = category
	}

	expenseDTOs := make([]dto.ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		category, ok := categoriesByID[expense.CategoryID]
		if !ok {
			return nil, fmt.Errorf("expense %d references missing category %d", expense.ID, expense.CategoryID)
		}
		expenseDTOs = append(expenseDTOs, dto.NewExpenseDTO(expense, category))
	}
	return expenseDTOs, nil
}

func (s *ExpenseService) Update(ctx context.Context, expenseID int64, expenseDTO dto.ExpenseDTO) (dto.ExpenseDTO, error) {
	var updated dto.ExpenseDTO
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		expenseRepo := s.repo.WithTx(tx)
		categoryRepo := s.categoryRepo.WithTx(tx)

		existing, err := expenseRepo.FindByID(ctx, expenseID)
		if err != nil {
			return err
		}
		if existing == nil {
			return expenseErrors.NewNotFoundError("Expense", expenseID)
		}

		expense := expenseDTO.ToDomain()
		expense.ID = expenseID

		category, err := categoryRepo.FindByID(ctx, expense.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return expenseErrors.NewNotFoundError("Category", expense.CategoryID)
		}

		saved, err := expenseRepo.Save(ctx, expense)
		if err != nil {
			return err
		}
		updated = dto.NewExpenseDTO(*saved, *category)
		return nil
	})
	if err != nil {
		return dto.ExpenseDTO{}, err
	}
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, expenseID int64) (string, error) {
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(ctx, expenseID)
		if err != nil {
			return err
		}
		if existing == nil {
			return expenseErrors.NewNotFoundError("Expense", expenseID)
		}
		return repo.DeleteByID(ctx, expenseID)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Expense with id: %d deleted successfully", expenseID), nil
}
