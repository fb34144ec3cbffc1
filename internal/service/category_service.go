package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// activityRecorder is satisfied by *ActivityService.
type activityRecorder interface {
	Record(ctx context.Context, userID int64, typ, description string, meta any)
}

type CategoryService struct {
	repo     repository.CategoryRepo
	activity activityRecorder
}

func NewCategoryService(repo repository.CategoryRepo, activity activityRecorder) *CategoryService {
	return &CategoryService{repo: repo, activity: activity}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	u, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, u.ID, "")
}

func (s *CategoryService) ListByType(ctx context.Context, typ models.TransactionType) ([]models.Category, error) {
	u, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if !typ.Valid() {
		return nil, newError(ErrValidation, "Invalid category type: %q", typ)
	}
	return s.repo.List(ctx, u.ID, typ)
}

// Get returns the caller's category id. Someone else's category is reported
// as not found.
func (s *CategoryService) Get(ctx context.Context, id int64) (models.Category, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Category{}, err
	}
	return s.get(ctx, u.ID, id)
}

func (s *CategoryService) get(ctx context.Context, userID, id int64) (models.Category, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return models.Category{}, err
	}
	if c == nil {
		return models.Category{}, errCategoryNotFound
	}
	return *c, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (models.Category, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Category{}, err
	}
	c, err := categoryFromInput(in)
	if err != nil {
		return models.Category{}, err
	}
	c.UserID = u.ID

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id

	s.activity.Record(ctx, u.ID, models.ActivityCategoryCreated,
		fmt.Sprintf("created category %s", c.Name), map[string]any{"categoryId": c.ID, "type": c.Type})
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in CategoryInput) (models.Category, error) {
	u, err := owner(ctx)
	if err != nil {
		return models.Category{}, err
	}
	next, err := categoryFromInput(in)
	if err != nil {
		return models.Category{}, err
	}
	c, err := s.get(ctx, u.ID, id)
	if err != nil {
		return models.Category{}, err
	}

	c.Name = next.Name
	c.Description = next.Description
	c.Type = next.Type
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Category{}, errCategoryNotFound
		}
		return models.Category{}, err
	}

	s.activity.Record(ctx, u.ID, models.ActivityCategoryUpdated,
		fmt.Sprintf("updated category %s", c.Name), map[string]any{"categoryId": c.ID})
	return c, nil
}

// Delete removes the caller's category together with its transactions.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	u, err := owner(ctx)
	if err != nil {
		return err
	}
	c, err := s.get(ctx, u.ID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, u.ID, c.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errCategoryNotFound
		}
		return err
	}

	s.activity.Record(ctx, u.ID, models.ActivityCategoryDeleted,
		fmt.Sprintf("deleted category %s", c.Name), map[string]any{"categoryId": c.ID})
	return nil
}

func categoryFromInput(in CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Category{}, newError(ErrValidation, "Category name is required")
	}
	typ, err := models.ParseTransactionType(string(in.Type))
	if err != nil {
		return models.Category{}, newError(ErrValidation, "Category type must be INCOME or EXPENSE")
	}
	return models.Category{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Type:        typ,
	}, nil
}
