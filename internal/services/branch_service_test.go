package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type fakeBranchStore struct {
	exists map[primitive.ObjectID]bool
	writes int
}

func newFakeBranchStore() *fakeBranchStore {
	return &fakeBranchStore{exists: make(map[primitive.ObjectID]bool)}
}

func (f *fakeBranchStore) List(_ context.Context, _ *primitive.ObjectID, _, _ int64) ([]models.Branch, error) {
	return nil, nil
}

func (f *fakeBranchStore) Insert(_ context.Context, _ *models.Branch) (primitive.ObjectID, error) {
	f.writes++
	return primitive.NewObjectID(), nil
}

func (f *fakeBranchStore) Update(_ context.Context, id primitive.ObjectID, _ models.BranchPatch, _ primitive.ObjectID) (bool, error) {
	if !f.exists[id] {
		return false, nil
	}
	f.writes++
	return true, nil
}

func (f *fakeBranchStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if !f.exists[id] {
		return false, nil
	}
	f.writes++
	delete(f.exists, id)
	return true, nil
}

func TestCreateBranchOpensByDefault(t *testing.T) {
	svc := NewBranchService(newFakeBranchStore(), &fakePendingGuard{})

	created, err := svc.CreateBranch(context.Background(), models.Branch{
		BranchName: "Harbor",
		IsOpen:     false,
	}, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("CreateBranch returned error: %v", err)
	}
	if !created.IsOpen {
		t.Fatal("expected new branch to open for business on creation")
	}
}

func TestUpdateBranchWithPendingOrderForbidden(t *testing.T) {
	store := newFakeBranchStore()
	branchID := primitive.NewObjectID()
	store.exists[branchID] = true
	svc := NewBranchService(store, &fakePendingGuard{pending: true})

	err := svc.UpdateBranch(context.Background(), branchID, models.BranchPatch{}, primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("expected no store write, got %d", store.writes)
	}
}

func TestUpdateBranchMissing(t *testing.T) {
	svc := NewBranchService(newFakeBranchStore(), &fakePendingGuard{})

	err := svc.UpdateBranch(context.Background(), primitive.NewObjectID(), models.BranchPatch{}, primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrBranchMissing) {
		t.Fatalf("expected ErrBranchMissing, got %v", err)
	}
}

func TestDeleteBranchWithPendingOrderForbidden(t *testing.T) {
	store := newFakeBranchStore()
	branchID := primitive.NewObjectID()
	store.exists[branchID] = true
	svc := NewBranchService(store, &fakePendingGuard{pending: true})

	err := svc.DeleteBranch(context.Background(), branchID)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !store.exists[branchID] {
		t.Fatal("expected branch to survive the blocked delete")
	}
}

func TestDeleteBranchMissing(t *testing.T) {
	svc := NewBranchService(newFakeBranchStore(), &fakePendingGuard{})

	err := svc.DeleteBranch(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, apperrors.ErrBranchMissing) {
		t.Fatalf("expected ErrBranchMissing, got %v", err)
	}
}
