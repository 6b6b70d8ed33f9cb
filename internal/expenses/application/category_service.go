package application

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/domain"
	"github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/dto"
	expenseErrors "github.com/AhmedAbdelghani28/expense-tracker-app/internal/expenses/errors"
)

// TxManager runs a function inside a single store transaction, committing
// when it returns nil and rolling back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type CategoryService struct {
	repo domain.CategoryRepository
	tx   TxManager
}

func NewCategoryService(repo domain.CategoryRepository, tx TxManager) *CategoryService {
	return &CategoryService{repo: repo, tx: tx}
}

func (s *CategoryService) Create(ctx context.Context, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error) {
	category := categoryDTO.ToDomain()
	// Creates always insert, a client-supplied id is ignored.
	category.ID = 0

	saved, err := s.repo.Save(ctx, category)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return dto.NewCategoryDTO(*saved), nil
}

func (s *CategoryService) GetByID(ctx context.Context, categoryID int64) (dto.CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	if category == nil {
		return dto.CategoryDTO{}, expenseErrors.NewNotFoundError("Category", categoryID)
	}
	return dto.NewCategoryDTO(*category), nil
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categoryDTOs := make([]dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoryDTOs = append(categoryDTOs, dto.NewCategoryDTO(category))
	}
	return categoryDTOs, nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID int64, categoryDTO dto.CategoryDTO) (dto.CategoryDTO, error) {
	var updated dto.CategoryDTO
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if existing == nil {
			return expenseErrors.NewNotFoundError("Category", categoryID)
		}

		existing.Name = categoryDTO.Name
		saved, err := repo.Save(ctx, *existing)
		if err != nil {
			return err
		}
		updated = dto.NewCategoryDTO(*saved)
		return nil
	})
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID int64) (string, error) {
	err := s.tx.WithinTx(ctx, func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if existing == nil {
			return expenseErrors.NewNotFoundError("Category", categoryID)
		}
		return repo.DeleteByID(ctx, categoryID)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Category with id: %d deleted successfully", categoryID), nil
}
