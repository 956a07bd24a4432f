package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type fakeAddressStore struct {
	owners map[primitive.ObjectID]primitive.ObjectID
	writes int
}

func newFakeAddressStore() *fakeAddressStore {
	return &fakeAddressStore{owners: make(map[primitive.ObjectID]primitive.ObjectID)}
}

func (f *fakeAddressStore) List(_ context.Context, _ primitive.ObjectID, _ *primitive.ObjectID, _, _ int64) ([]models.Address, error) {
	return nil, nil
}

func (f *fakeAddressStore) Insert(_ context.Context, _ *models.Address) (primitive.ObjectID, error) {
	f.writes++
	return primitive.NewObjectID(), nil
}

func (f *fakeAddressStore) Update(_ context.Context, id, userID primitive.ObjectID, _ models.AddressPatch) (bool, error) {
	if f.owners[id] != userID {
		return false, nil
	}
	f.writes++
	return true, nil
}

func (f *fakeAddressStore) Delete(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	if f.owners[id] != userID {
		return false, nil
	}
	f.writes++
	delete(f.owners, id)
	return true, nil
}

func TestCreateAddressStampsOwner(t *testing.T) {
	svc := NewAddressService(newFakeAddressStore(), &fakePendingGuard{})
	userID := primitive.NewObjectID()

	created, err := svc.CreateAddress(context.Background(), models.Address{Label: "Home"}, userID)
	if err != nil {
		t.Fatalf("CreateAddress returned error: %v", err)
	}
	if created.UserID != userID {
		t.Fatalf("expected userId %v, got %v", userID, created.UserID)
	}
}

func TestUpdateAddressWithPendingOrderForbidden(t *testing.T) {
	store := newFakeAddressStore()
	userID := primitive.NewObjectID()
	addressID := primitive.NewObjectID()
	store.owners[addressID] = userID
	svc := NewAddressService(store, &fakePendingGuard{pending: true})

	err := svc.UpdateAddress(context.Background(), addressID, userID, models.AddressPatch{})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("expected no store write, got %d", store.writes)
	}
}

func TestUpdateForeignAddressReadsAsMissing(t *testing.T) {
	store := newFakeAddressStore()
	addressID := primitive.NewObjectID()
	store.owners[addressID] = primitive.NewObjectID()
	svc := NewAddressService(store, &fakePendingGuard{})

	err := svc.UpdateAddress(context.Background(), addressID, primitive.NewObjectID(), models.AddressPatch{})
	if !errors.Is(err, apperrors.ErrAddressMissing) {
		t.Fatalf("expected ErrAddressMissing for another user's address, got %v", err)
	}
}

func TestDeleteAddressWithPendingOrderForbidden(t *testing.T) {
	store := newFakeAddressStore()
	userID := primitive.NewObjectID()
	addressID := primitive.NewObjectID()
	store.owners[addressID] = userID
	svc := NewAddressService(store, &fakePendingGuard{pending: true})

	err := svc.DeleteAddress(context.Background(), addressID, userID)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := store.owners[addressID]; !ok {
		t.Fatal("expected address to survive the blocked delete")
	}
}

func TestDeleteAddressMissing(t *testing.T) {
	svc := NewAddressService(newFakeAddressStore(), &fakePendingGuard{})

	err := svc.DeleteAddress(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrAddressMissing) {
		t.Fatalf("expected ErrAddressMissing, got %v", err)
	}
}
