package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

type AddressStore interface {
	List(ctx context.Context, userID primitive.ObjectID, addressID *primitive.ObjectID, page, limit int64) ([]models.Address, error)
	Insert(ctx context.Context, address *models.Address) (primitive.ObjectID, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, patch models.AddressPatch) (bool, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}

// AddressOrderGuard answers whether a pending order delivers to an address.
type AddressOrderGuard interface {
	HasPendingForAddress(ctx context.Context, addressID primitive.ObjectID) (bool, error)
}

// AddressService manages a user's delivery addresses. An address with a
// pending order is frozen: the order's branch was chosen from its location.
type AddressService struct {
	addresses AddressStore
	orders    AddressOrderGuard
}

func NewAddressService(addresses AddressStore, orders AddressOrderGuard) *AddressService {
	return &AddressService{addresses: addresses, orders: orders}
}

func (s *AddressService) GetAddresses(ctx context.Context, userID primitive.ObjectID, addressID *primitive.ObjectID, page, limit int64) ([]models.Address, error) {
	return s.addresses.List(ctx, userID, addressID, page, limit)
}

func (s *AddressService) CreateAddress(ctx context.Context, address models.Address, userID primitive.ObjectID) (*models.Address, error) {
	address.UserID = userID
	id, err := s.addresses.Insert(ctx, &address)
	if err != nil {
		return nil, err
	}
	address.ID = id
	return &address, nil
}

// UpdateAddress edits an address owned by userID. A miss on the owner-scoped
// update reads as not-found, never as someone else's address.
func (s *AddressService) UpdateAddress(ctx context.Context, addressID, userID primitive.ObjectID, patch models.AddressPatch) error {
	pending, err := s.orders.HasPendingForAddress(ctx, addressID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	matched, err := s.addresses.Update(ctx, addressID, userID, patch)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrAddressMissing
	}
	return nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, addressID, userID primitive.ObjectID) error {
	pending, err := s.orders.HasPendingForAddress(ctx, addressID)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.ErrForbidden
	}

	deleted, err := s.addresses.Delete(ctx, addressID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrAddressMissing
	}
	return nil
}
