package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type fakeItemStore struct {
	details map[primitive.ObjectID]*models.ItemDetail
	exists  map[primitive.ObjectID]bool
	writes  int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{
		details: make(map[primitive.ObjectID]*models.ItemDetail),
		exists:  make(map[primitive.ObjectID]bool),
	}
}

func (f *fakeItemStore) FindDetail(_ context.Context, id primitive.ObjectID) (*models.ItemDetail, error) {
	return f.details[id], nil
}

func (f *fakeItemStore) ListGroupedByCategory(_ context.Context, _ models.ItemListFilter, _, _ int64) ([]models.CategoryItems, error) {
	return nil, nil
}

func (f *fakeItemStore) Insert(_ context.Context, _ *models.Item) (primitive.ObjectID, error) {
	f.writes++
	return primitive.NewObjectID(), nil
}

func (f *fakeItemStore) Update(_ context.Context, id primitive.ObjectID, _ models.ItemPatch, _ primitive.ObjectID) (bool, error) {
	if !f.exists[id] {
		return false, nil
	}
	f.writes++
	return true, nil
}

func (f *fakeItemStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if !f.exists[id] {
		return false, nil
	}
	f.writes++
	delete(f.exists, id)
	return true, nil
}

type fakePendingGuard struct {
	pending bool
}

func (f *fakePendingGuard) HasPendingForItem(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return f.pending, nil
}

func (f *fakePendingGuard) HasPendingForBranch(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return f.pending, nil
}

func (f *fakePendingGuard) HasPendingForAddress(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return f.pending, nil
}

func TestUpdateItemWithPendingOrderForbidden(t *testing.T) {
	store := newFakeItemStore()
	itemID := primitive.NewObjectID()
	store.exists[itemID] = true
	svc := NewItemService(store, &fakePendingGuard{pending: true})

	err := svc.UpdateItem(context.Background(), itemID, models.ItemPatch{}, primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("expected no store write, got %d", store.writes)
	}
}

func TestUpdateItemMissing(t *testing.T) {
	svc := NewItemService(newFakeItemStore(), &fakePendingGuard{})

	err := svc.UpdateItem(context.Background(), primitive.NewObjectID(), models.ItemPatch{}, primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrItemMissing) {
		t.Fatalf("expected ErrItemMissing, got %v", err)
	}
}

func TestDeleteItemWithPendingOrderForbidden(t *testing.T) {
	store := newFakeItemStore()
	itemID := primitive.NewObjectID()
	store.exists[itemID] = true
	svc := NewItemService(store, &fakePendingGuard{pending: true})

	err := svc.DeleteItem(context.Background(), itemID)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !store.exists[itemID] {
		t.Fatal("expected item to survive the blocked delete")
	}
}

func TestDeleteItem(t *testing.T) {
	store := newFakeItemStore()
	itemID := primitive.NewObjectID()
	store.exists[itemID] = true
	svc := NewItemService(store, &fakePendingGuard{})

	if err := svc.DeleteItem(context.Background(), itemID); err != nil {
		t.Fatalf("DeleteItem returned error: %v", err)
	}
	if store.exists[itemID] {
		t.Fatal("expected item removed")
	}
}

func TestGetItemMissing(t *testing.T) {
	svc := NewItemService(newFakeItemStore(), &fakePendingGuard{})

	_, err := svc.GetItem(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrItemMissing) {
		t.Fatalf("expected ErrItemMissing, got %v", err)
	}
}

func TestCreateItemStampsCreator(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store, &fakePendingGuard{})
	adminID := primitive.NewObjectID()

	created, err := svc.CreateItem(context.Background(), models.Item{ItemName: "Baklava", Price: 3}, adminID)
	if err != nil {
		t.Fatalf("CreateItem returned error: %v", err)
	}
	if created.CreatedBy != adminID {
		t.Fatalf("expected createdBy %v, got %v", adminID, created.CreatedBy)
	}
	if created.ID.IsZero() {
		t.Fatal("expected assigned id")
	}
}
