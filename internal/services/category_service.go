package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type CategoryStore interface {
	List(ctx context.Context, categoryID *primitive.ObjectID, page, limit int64) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.CategoryPatch, updatedBy primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CategoryService manages menu categories.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetCategories(ctx context.Context, categoryID *primitive.ObjectID, page, limit int64) ([]models.Category, error) {
	return s.categories.List(ctx, categoryID, page, limit)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category, createdBy primitive.ObjectID) (*models.Category, error) {
	category.CreatedBy = createdBy
	id, err := s.categories.Insert(ctx, &category)
	if err != nil {
		return nil, err
	}
	category.ID = id
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID primitive.ObjectID, patch models.CategoryPatch, updatedBy primitive.ObjectID) error {
	matched, err := s.categories.Update(ctx, categoryID, patch, updatedBy)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrCategoryMissing
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	deleted, err := s.categories.Delete(ctx, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCategoryMissing
	}
	return nil
}
