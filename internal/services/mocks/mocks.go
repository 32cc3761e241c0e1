// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t testingT) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	ret := m.Called(ctx, req)

	var order *models.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*models.Order)
	}

	return order, ret.Error(1)
}

func (m *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ret := m.Called(ctx, id)

	var order *models.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*models.Order)
	}

	return order, ret.Error(1)
}

type RestockService struct {
	mock.Mock
}

func NewRestockService(t testingT) *RestockService {
	m := &RestockService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *RestockService) Restock(ctx context.Context, category, code string, newStock int) (*models.RestockResponse, error) {
	ret := m.Called(ctx, category, code, newStock)

	var resp *models.RestockResponse
	if ret.Get(0) != nil {
		resp = ret.Get(0).(*models.RestockResponse)
	}

	return resp, ret.Error(1)
}

type NotifyService struct {
	mock.Mock
}

func NewNotifyService(t testingT) *NotifyService {
	m := &NotifyService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *NotifyService) CreateRequest(ctx context.Context, req *models.CreateNotifyMeRequest) (*models.NotifyRequest, error) {
	ret := m.Called(ctx, req)

	var request *models.NotifyRequest
	if ret.Get(0) != nil {
		request = ret.Get(0).(*models.NotifyRequest)
	}

	return request, ret.Error(1)
}

func (m *NotifyService) ListRequests(ctx context.Context, status string, page, size int) ([]*models.NotifyRequest, int, error) {
	ret := m.Called(ctx, status, page, size)

	var requests []*models.NotifyRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]*models.NotifyRequest)
	}

	return requests, ret.Int(1), ret.Error(2)
}

type ProductService struct {
	mock.Mock
}

func NewProductService(t testingT) *ProductService {
	m := &ProductService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ProductService) CreateProduct(ctx context.Context, category string, req *models.CreateProductRequest) (*models.Product, error) {
	ret := m.Called(ctx, category, req)

	var product *models.Product
	if ret.Get(0) != nil {
		product = ret.Get(0).(*models.Product)
	}

	return product, ret.Error(1)
}

func (m *ProductService) GetProduct(ctx context.Context, category, code string) (*models.Product, error) {
	ret := m.Called(ctx, category, code)

	var product *models.Product
	if ret.Get(0) != nil {
		product = ret.Get(0).(*models.Product)
	}

	return product, ret.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, category, code string, req *models.UpdateProductRequest) (*models.Product, error) {
	ret := m.Called(ctx, category, code, req)

	var product *models.Product
	if ret.Get(0) != nil {
		product = ret.Get(0).(*models.Product)
	}

	return product, ret.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, category, code string) error {
	ret := m.Called(ctx, category, code)

	return ret.Error(0)
}

func (m *ProductService) ListProducts(ctx context.Context, category string, page, size int) ([]*models.Product, int, error) {
	ret := m.Called(ctx, category, page, size)

	var products []*models.Product
	if ret.Get(0) != nil {
		products = ret.Get(0).([]*models.Product)
	}

	return products, ret.Int(1), ret.Error(2)
}
