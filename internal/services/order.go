package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/metrics"
	"github.com/atlasboutique/storefront-platform/internal/models"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	"github.com/google/uuid"
)

// orderNumberAttempts bounds the retries after a generated order number
// collides with an existing one.
const orderNumberAttempts = 3

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateOrder validates the cart, then hands the whole order to the
// repository as one transaction: header, items, and stock decrements commit
// together or not at all.
func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	if len(req.Items) == 0 {
		return nil, errors.ValidationError("Cannot create order with an empty cart")
	}

	addr := req.ShippingAddress
	if addr.Name == "" || addr.Phone == "" || addr.City == "" || addr.Street == "" {
		return nil, errors.ValidationError("Shipping address must include name, phone, city and street")
	}

	var totalAmount float64

	items := make([]models.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {

		category, err := models.ParseCategory(line.Category)
		if err != nil {
			return nil, errors.ValidationError("Invalid category: " + line.Category)
		}

		subtotal := line.Subtotal
		if subtotal == 0 {
			subtotal = float64(line.Quantity) * line.Price
		}

		totalAmount += subtotal

		items = append(items, models.OrderItem{
			ID:              uuid.New(),
			ProductID:       line.ProductID,
			ProductCategory: category,
			Quantity:        line.Quantity,
			Price:           line.Price,
			Subtotal:        subtotal,
			Size:            line.Size,
			Color:           line.Color,
		})
	}

	order := &models.Order{
		ID:            uuid.New(),
		UserID:        req.UserID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   totalAmount + req.ShippingCost,
		ShippingCost:  req.ShippingCost,
		Shipping:      req.ShippingAddress,
		Notes:         req.Notes,
		Items:         items,
	}

	var err error

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {

		order.OrderNumber = generateOrderNumber()

		err = s.orderRepo.CreateOrder(ctx, order)
		if !stdErrors.Is(err, repository.ErrOrderNumberConflict) {
			break
		}
	}

	if err != nil {

		var stockErr *repository.InsufficientStockError
		if stdErrors.As(err, &stockErr) {
			metrics.ObserveOrderPlaced("insufficient_stock")

			return nil, errors.InsufficientStockError(stockErr.Error()).WithError(err)
		}

		if stdErrors.Is(err, repository.ErrNotFound) {
			metrics.ObserveOrderPlaced("product_not_found")

			return nil, errors.NotFoundError("Product in cart no longer exists").WithError(err)
		}

		metrics.ObserveOrderPlaced("error")

		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.ObserveOrderPlaced("success")

	// read-back after commit so the response carries the stored snapshot
	created, err := s.orderRepo.GetOrderByID(ctx, order.ID)
	if err != nil {
		return nil, errors.DatabaseError("Order was created but could not be read back").WithError(err)
	}

	return created, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

// generateOrderNumber builds the human-readable ORD-<date>-<random> number.
// Collisions are possible within a day; the storage layer's unique constraint
// plus the retry loop above make them harmless.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), rand.IntN(10000))
}
