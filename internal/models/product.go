package models

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `json:"description,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Code        string  `json:"code" validate:"required,min=2,max=50"`
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Brand       string  `json:"brand" validate:"required,min=1,max=100"`
	Description string  `json:"description,omitempty"`
	Gender      string  `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty"`
	Gender      *string  `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type RestockRequest struct {
	Stock int `json:"stock" validate:"gte=0"`
}
