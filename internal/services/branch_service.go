package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type BranchStore interface {
	List(ctx context.Context, branchID *primitive.ObjectID, page, limit int64) ([]models.Branch, error)
	Insert(ctx context.Context, branch *models.Branch) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.BranchPatch, updatedBy primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// BranchOrderGuard answers whether a branch still has pending orders.
type BranchOrderGuard interface {
	HasPendingForBranch(ctx context.Context, branchID primitive.ObjectID) (bool, error)
}

// BranchService manages restaurant branches. A branch with pending orders
// is frozen: moving or removing it would strand orders already assigned
// to it.
type BranchService struct {
	branches BranchStore
	orders   BranchOrderGuard
}

func NewBranchService(branches BranchStore, orders BranchOrderGuard) *BranchService {
	return &BranchService{branches: branches, orders: orders}
}

func (s *BranchService) GetBranches(ctx context.Context, branchID *primitive.ObjectID, page, limit int64) ([]models.Branch, error) {
	return s.branches.List(ctx, branchID, page, limit)
}

// CreateBranch persists a new branch. Branches open for business on
// creation; closing one is an explicit update.
func (s *BranchService) CreateBranch(ctx context.Context, branch models.Branch, createdBy primitive.ObjectID) (*models.Branch, error) {
	branch.IsOpen = true
	branch.CreatedBy = createdBy
	id, err := s.branches.Insert(ctx, &branch)
	if err != nil {
		return nil, err
	}
	branch.ID = id
	return &branch, nil
}

func (s *BranchService) UpdateBranch(ctx context.Context, branchID primitive.ObjectID, patch models.BranchPatch, updatedBy primitive.ObjectID) error {
	pending, err := s.orders.HasPendingForBranch(ctx, branchID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	matched, err := s.branches.Update(ctx, branchID, patch, updatedBy)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrBranchMissing
	}
	return nil
}

func (s *BranchService) DeleteBranch(ctx context.Context, branchID primitive.ObjectID) error {
	pending, err := s.orders.HasPendingForBranch(ctx, branchID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	deleted, err := s.branches.Delete(ctx, branchID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrBranchMissing
	}
	return nil
}
