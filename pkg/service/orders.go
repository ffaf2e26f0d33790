package service

import (
	"context"
	"sort"
	"time"

	"github.com/example/tableserve/pkg/cart"
	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

type OrderService struct {
	repo   OrderRepo
	carts  cart.Store
	logger *zap.Logger
}

func NewOrderService(repo OrderRepo, carts cart.Store, logger *zap.Logger) *OrderService {
	return &OrderService{repo: repo, carts: carts, logger: logger}
}

type SubmitOrderIn struct {
	Name        string
	Mobile      string
	TableNumber int
	TotalAmount float64
	CartItems   []models.CartLine
	// UserID, when present, names the cart key to clear after submission.
	UserID string
}

// Submit persists the order snapshot exactly as received. The total comes
// from the client and is not recomputed. There is no idempotency key, so a
// retry after a network failure creates a second order.
func (s *OrderService) Submit(ctx context.Context, in SubmitOrderIn) (*models.Order, error) {
	order := &models.Order{
		Name:        in.Name,
		Mobile:      in.Mobile,
		TableNumber: in.TableNumber,
		TotalAmount: in.TotalAmount,
		CartItems:   in.CartItems,
		Date:        time.Now(),
		Status:      models.StatusUndelivered,
	}
	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	// Cart cleanup is best-effort; the order is already durable.
	if in.UserID != "" && s.carts != nil {
		if err := s.carts.Clear(ctx, in.UserID); err != nil {
			s.logger.Warn("failed to clear cart after order",
				zap.String("user", in.UserID), zap.Error(err))
		}
	}
	return order, nil
}

// List returns every order with all undelivered orders before all delivered
// ones, stable within each group. reverse flips the final slice.
func (s *OrderService) List(ctx context.Context, reverse bool) ([]models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Status != models.StatusDelivered && orders[j].Status == models.StatusDelivered
	})

	if reverse {
		for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
			orders[i], orders[j] = orders[j], orders[i]
		}
	}
	return orders, nil
}

// MarkDelivered flips an order to Delivered. The transition is one-way:
// a second call fails with ErrAlreadyDelivered and leaves the order alone.
func (s *OrderService) MarkDelivered(ctx context.Context, orderID, status string) error {
	if status != models.StatusDelivered {
		return ErrInvalidStatus
	}

	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return repository.ErrNotFound
	}

	order, err := s.repo.GetOrder(ctx, oid)
	if err != nil {
		return err
	}
	if order.Status == models.StatusDelivered {
		return ErrAlreadyDelivered
	}

	return s.repo.SetOrderStatus(ctx, oid, models.StatusDelivered)
}
