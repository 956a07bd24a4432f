package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"restaurant-backend/internal/apperrors"
	"restaurant-backend/internal/models"
)

// Stores consumed by the order workflow. The Mongo implementations live in
// internal/repository; tests substitute in-memory fakes.

type ItemReader interface {
	// FindByID returns (nil, nil) when no item matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
}

type AddressReader interface {
	// FindByID returns (nil, nil) when no address matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error)
}

type BranchLocator interface {
	// NearestOpen returns (nil, nil) when no open branch is in range.
	NearestOpen(ctx context.Context, location models.GeoPoint, maxDistanceMeters float64) (*models.Branch, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Replace(ctx context.Context, order *models.Order) error
	SetStatus(ctx context.Context, orderID primitive.ObjectID, from, to models.OrderStatus) (models.UpdateResult, error)
	CancelForUser(ctx context.Context, orderID, userID primitive.ObjectID) (models.UpdateResult, error)
	ListPending(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error)
	ListHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error)
	FindDetail(ctx context.Context, orderID primitive.ObjectID) (*models.OrderDetail, error)
	ListDetails(ctx context.Context, orderID *primitive.ObjectID, page, limit int64) ([]models.OrderDetail, error)
}

// OrderConfig carries the workflow constants, fixed at construction.
type OrderConfig struct {
	BranchMaxDistanceMeters float64
}

// OrderItemInput is one requested line of an order. Duplicate item ids stay
// as separate lines; quantities are not merged.
type OrderItemInput struct {
	ItemID   primitive.ObjectID
	Quantity int
}

// OrderPatch describes an in-place edit of a pending order. A nil OrderItems
// leaves the lines untouched; a non-nil one replaces them in full. AddressID,
// when set, re-resolves the servicing branch as well.
type OrderPatch struct {
	OrderItems []OrderItemInput
	AddressID  *primitive.ObjectID
}

// OrderService validates, prices and persists orders, and enforces the
// order state-transition rules.
type OrderService struct {
	orders    OrderStore
	items     ItemReader
	addresses AddressReader
	branches  BranchLocator
	cfg       OrderConfig
	now       func() time.Time
}

func NewOrderService(orders OrderStore, items ItemReader, addresses AddressReader, branches BranchLocator, cfg OrderConfig) *OrderService {
	return &OrderService{
		orders:    orders,
		items:     items,
		addresses: addresses,
		branches:  branches,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateOrder prices the requested items, resolves the delivery address and
// its nearest open branch, and persists a new pending order. Nothing is
// written until every validation has passed.
func (s *OrderService) CreateOrder(ctx context.Context, userID primitive.ObjectID, orderItems []OrderItemInput, addressID primitive.ObjectID) (*models.Order, error) {
	lines, totalPrice, err := s.priceItems(ctx, orderItems)
	if err != nil {
		return nil, err
	}

	branch, err := s.resolveBranch(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderItems:  lines,
		UserID:      userID,
		AddressID:   addressID,
		BranchID:    branch.ID,
		Status:      models.StatusPending,
		TotalPrice:  totalPrice,
		DateOrdered: s.now(),
	}
	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id
	return order, nil
}

// UpdateOrder edits a pending order owned by userID. Changes are applied to
// a candidate copy and persisted with a single save, so a late validation
// failure leaves the stored order untouched.
func (s *OrderService) UpdateOrder(ctx context.Context, userID, orderID primitive.ObjectID, patch OrderPatch) (*models.Order, error) {
	found, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrOrderMissing
	}
	if found.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if found.Status != models.StatusPending {
		return nil, apperrors.ErrForbidden
	}

	updated := *found
	if patch.OrderItems != nil {
		lines, totalPrice, err := s.priceItems(ctx, patch.OrderItems)
		if err != nil {
			return nil, err
		}
		updated.OrderItems = lines
		updated.TotalPrice = totalPrice
	}
	if patch.AddressID != nil {
		branch, err := s.resolveBranch(ctx, userID, *patch.AddressID)
		if err != nil {
			return nil, err
		}
		updated.AddressID = *patch.AddressID
		updated.BranchID = branch.ID
	}
	updated.DateOrdered = s.now()

	if err := s.orders.Replace(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AcceptOrRejectOrder moves a pending order to accepted or rejected via a
// single conditional update. A Matched=false result means the order was not
// pending (or does not exist); callers inspect it, it is not an error.
func (s *OrderService) AcceptOrRejectOrder(ctx context.Context, orderID primitive.ObjectID, target models.OrderStatus) (models.UpdateResult, error) {
	if target != models.StatusAccepted && target != models.StatusRejected {
		return models.UpdateResult{}, fmt.Errorf("unsupported status transition to %q", target)
	}
	return s.orders.SetStatus(ctx, orderID, models.StatusPending, target)
}

// CancelOrder cancels a pending order owned by userID, with the same
// Matched=false convention as AcceptOrRejectOrder.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID primitive.ObjectID) (models.UpdateResult, error) {
	return s.orders.CancelForUser(ctx, orderID, userID)
}

// GetOrders lists the caller's pending orders.
func (s *OrderService) GetOrders(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error) {
	return s.orders.ListPending(ctx, userID, page, limit)
}

// GetHistory lists the caller's non-pending orders.
func (s *OrderService) GetHistory(ctx context.Context, userID primitive.ObjectID, page, limit int64) ([]models.Order, error) {
	return s.orders.ListHistory(ctx, userID, page, limit)
}

// GetOrder loads the denormalized view of one order. Existence is checked
// before ownership, so a missing order reads as not-found even to strangers.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID primitive.ObjectID) (*models.OrderDetail, error) {
	detail, err := s.orders.FindDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperrors.ErrOrderMissing
	}
	if detail.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return detail, nil
}

// AdminOrders lists the denormalized view across all users, optionally
// narrowed to one order. No ownership check applies.
func (s *OrderService) AdminOrders(ctx context.Context, orderID *primitive.ObjectID, page, limit int64) ([]models.OrderDetail, error) {
	return s.orders.ListDetails(ctx, orderID, page, limit)
}

// priceItems validates every requested item against the catalog, snapshots
// the current name into each line and accumulates the total price. Input
// order is preserved.
func (s *OrderService) priceItems(ctx context.Context, inputs []OrderItemInput) ([]models.OrderItem, float64, error) {
	lines := make([]models.OrderItem, 0, len(inputs))
	var totalPrice float64
	for _, input := range inputs {
		found, err := s.items.FindByID(ctx, input.ItemID)
		if err != nil {
			return nil, 0, err
		}
		if found == nil {
			return nil, 0, apperrors.ErrItemMissing
		}
		totalPrice += found.Price * float64(input.Quantity)
		lines = append(lines, models.OrderItem{
			ItemID:   input.ItemID,
			Quantity: input.Quantity,
			ItemName: found.ItemName,
		})
	}
	return lines, totalPrice, nil
}

// resolveBranch loads the delivery address, enforces its ownership and finds
// the nearest open branch within the configured radius. The ownership check
// runs before any branch query.
func (s *OrderService) resolveBranch(ctx context.Context, userID, addressID primitive.ObjectID) (*models.Branch, error) {
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, apperrors.ErrAddressMissing
	}
	if address.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	branch, err := s.branches.NearestOpen(ctx, address.Location, s.cfg.BranchMaxDistanceMeters)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperrors.ErrBranchUnavailable
	}
	return branch, nil
}
