package models

import "time"

type NotifyStatus string

const (
	NotifyStatusPending  NotifyStatus = "pending"
	NotifyStatusNotified NotifyStatus = "notified"
	NotifyStatusExpired  NotifyStatus = "expired"
)

// NotifyRequest is a customer's standing request to be told when a product is
// back in stock. The product fields are a snapshot taken at request time;
// ProductCategory is always the category the code actually resolved to, never
// a client-asserted value.
type NotifyRequest struct {
	ID              int64        `json:"id"`
	ProductID       int64        `json:"product_id"`
	ProductCode     string       `json:"product_code"`
	ProductName     string       `json:"product_name"`
	ProductBrand    string       `json:"product_brand"`
	ProductPrice    float64      `json:"product_price"`
	ProductCategory Category     `json:"product_category"`
	ProductGender   string       `json:"product_gender,omitempty"`
	CustomerName    string       `json:"customer_name"`
	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Status          NotifyStatus `json:"status"`
	NotifiedAt      *time.Time   `json:"notified_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

type NotifyMeProduct struct {
	Code string `json:"code" validate:"required,min=2,max=50"`
	// Category may be sent by the client but is never trusted; the code is
	// resolved against every table and the real location wins.
	Category string `json:"category,omitempty"`
}

type NotifyMeCustomer struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}

type CreateNotifyMeRequest struct {
	Product  NotifyMeProduct  `json:"product" validate:"required"`
	Customer NotifyMeCustomer `json:"customer" validate:"required"`
	Method   string           `json:"method,omitempty" validate:"omitempty,oneof=email whatsapp any"`
}

// ChannelOutcome records one transport attempt for one request.
type ChannelOutcome struct {
	Channel string `json:"channel"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
}

type NotifyDetail struct {
	RequestID    int64            `json:"request_id"`
	CustomerName string           `json:"customer_name"`
	Notified     bool             `json:"notified"`
	Channels     []ChannelOutcome `json:"channels"`
	WhatsAppLink string           `json:"whatsapp_link,omitempty"`
}

type NotifySummary struct {
	Total   int            `json:"total"`
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Details []NotifyDetail `json:"details"`
}

type RestockResponse struct {
	Product       *Product      `json:"product"`
	Notifications NotifySummary `json:"notifications"`
	WhatsAppLinks []string      `json:"whatsappLinks"`
}
