package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type ItemStore interface {
	FindDetail(ctx context.Context, id primitive.ObjectID) (*models.ItemDetail, error)
	ListGroupedByCategory(ctx context.Context, filter models.ItemListFilter, page, limit int64) ([]models.CategoryItems, error)
	Insert(ctx context.Context, item *models.Item) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.ItemPatch, updatedBy primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ItemOrderGuard answers whether a pending order still references an item.
type ItemOrderGuard interface {
	HasPendingForItem(ctx context.Context, itemID primitive.ObjectID) (bool, error)
}

// ItemService manages the menu catalog. Items referenced by a pending order
// are frozen: editing or deleting them would silently change or orphan
// orders already placed.
type ItemService struct {
	items  ItemStore
	orders ItemOrderGuard
}

func NewItemService(items ItemStore, orders ItemOrderGuard) *ItemService {
	return &ItemService{items: items, orders: orders}
}

func (s *ItemService) GetItems(ctx context.Context, filter models.ItemListFilter, page, limit int64) ([]models.CategoryItems, error) {
	return s.items.ListGroupedByCategory(ctx, filter, page, limit)
}

func (s *ItemService) GetItem(ctx context.Context, itemID primitive.ObjectID) (*models.ItemDetail, error) {
	detail, err := s.items.FindDetail(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperrors.ErrItemMissing
	}
	return detail, nil
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item, createdBy primitive.ObjectID) (*models.Item, error) {
	item.CreatedBy = createdBy
	id, err := s.items.Insert(ctx, &item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return &item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, itemID primitive.ObjectID, patch models.ItemPatch, updatedBy primitive.ObjectID) error {
	pending, err := s.orders.HasPendingForItem(ctx, itemID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	matched, err := s.items.Update(ctx, itemID, patch, updatedBy)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrItemMissing
	}
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID primitive.ObjectID) error {
	pending, err := s.orders.HasPendingForItem(ctx, itemID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	deleted, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrItemMissing
	}
	return nil
}
