package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder persists the order header, its items and the stock decrements
// as one transaction. Each product row is locked with SELECT ... FOR UPDATE
// before its stock is checked, so two racing orders serialize per row and
// the stock >= 0 invariant holds under concurrency. Any failure rolls back
// everything: no partial order is ever visible.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	headerQuery := `
		INSERT INTO orders (id, order_number, user_id, status, payment_status, payment_method, total_amount, shipping_cost,
			shipping_name, shipping_phone, shipping_city, shipping_street, shipping_region, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`

	_, err = tx.ExecContext(dbCtx, headerQuery, order.ID, order.OrderNumber, order.UserID, order.Status,
		order.PaymentStatus, order.PaymentMethod, order.TotalAmount, order.ShippingCost,
		order.Shipping.Name, order.Shipping.Phone, order.Shipping.City, order.Shipping.Street,
		order.Shipping.Region, order.Notes)

	if err != nil {

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrOrderNumberConflict
		}

		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_code, product_name, product_brand, product_category,
			quantity, price, subtotal, size, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`

	for i := range order.Items {

		item := &order.Items[i]

		table, err := tableFor(item.ProductCategory)
		if err != nil {
			return err
		}

		lockQuery := fmt.Sprintf("SELECT code, name, brand, stock FROM %s WHERE id = $1 FOR UPDATE", table)

		var stock int

		err = tx.QueryRowContext(dbCtx, lockQuery, item.ProductID).
			Scan(&item.ProductCode, &item.ProductName, &item.ProductBrand, &stock)
		if err != nil {

			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("product %d in %s: %w", item.ProductID, item.ProductCategory, ErrNotFound)
			}

			return fmt.Errorf("failed to lock product row: %w", err)
		}

		if stock < item.Quantity {
			return &InsufficientStockError{
				ProductID:   item.ProductID,
				ProductCode: item.ProductCode,
				ProductName: item.ProductName,
				Requested:   item.Quantity,
				Available:   stock,
			}
		}

		_, err = tx.ExecContext(dbCtx, itemQuery, item.ID, order.ID, item.ProductID, item.ProductCode,
			item.ProductName, item.ProductBrand, item.ProductCategory, item.Quantity, item.Price,
			item.Subtotal, item.Size, item.Color)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}

		decrementQuery := fmt.Sprintf("UPDATE %s SET stock = stock - $1, updated_at = NOW() WHERE id = $2", table)

		if _, err := tx.ExecContext(dbCtx, decrementQuery, item.Quantity, item.ProductID); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: id}

	query := `
		SELECT order_number, user_id, status, payment_status, payment_method, total_amount, shipping_cost,
			shipping_name, shipping_phone, shipping_city, shipping_street, shipping_region, notes, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.OrderNumber, &order.UserID, &order.Status,
		&order.PaymentStatus, &order.PaymentMethod, &order.TotalAmount, &order.ShippingCost,
		&order.Shipping.Name, &order.Shipping.Phone, &order.Shipping.City, &order.Shipping.Street,
		&order.Shipping.Region, &order.Notes, &order.CreatedAt, &order.UpdatedAt)

	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	itemsQuery := `
		SELECT id, product_id, product_code, product_name, product_brand, product_category,
			quantity, price, subtotal, size, color, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {

		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.ProductCode, &item.ProductName, &item.ProductBrand,
			&item.ProductCategory, &item.Quantity, &item.Price, &item.Subtotal, &item.Size, &item.Color, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = order.ID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}
