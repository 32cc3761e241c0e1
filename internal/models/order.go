package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type ShippingAddress struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Phone  string `json:"phone" validate:"required,min=6,max=20"`
	City   string `json:"city" validate:"required,min=2,max=100"`
	Street string `json:"street" validate:"required,min=2,max=200"`
	Region string `json:"region,omitempty"`
}

// OrderItem snapshots the product at purchase time. ProductCategory is kept
// because the owning table is not re-derivable from the item later.
type OrderItem struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"order_id"`
	ProductID       int64     `json:"product_id"`
	ProductCode     string    `json:"product_code"`
	ProductName     string    `json:"product_name"`
	ProductBrand    string    `json:"product_brand"`
	ProductCategory Category  `json:"product_category"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
	Subtotal        float64   `json:"subtotal"`
	Size            string    `json:"size,omitempty"`
	Color           string    `json:"color,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	UserID        *uuid.UUID      `json:"user_id,omitempty"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TotalAmount   float64         `json:"total_amount"`
	ShippingCost  float64         `json:"shipping_cost"`
	Shipping      ShippingAddress `json:"shipping_address"`
	Notes         string          `json:"notes,omitempty"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CartLine struct {
	ProductID int64   `json:"productId" validate:"required"`
	Category  string  `json:"category" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"required,gte=0"`
	Subtotal  float64 `json:"subtotal" validate:"gte=0"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

type CreateOrderRequest struct {
	Items           []CartLine      `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	ShippingCost    float64         `json:"shippingCost,omitempty" validate:"gte=0"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card cash_on_delivery"`
	Notes           string          `json:"notes,omitempty" validate:"max=1000"`
	UserID          *uuid.UUID      `json:"userId,omitempty"`
}
