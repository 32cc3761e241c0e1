// Package mocks provides testify mocks for the repository interfaces.
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

type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ProductRepository) CreateProduct(ctx context.Context, category models.Category, product *models.Product) error {
	ret := m.Called(ctx, category, product)

	return ret.Error(0)
}

func (m *ProductRepository) GetProductByCode(ctx context.Context, category models.Category, code string) (*models.Product, error) {
	ret := m.Called(ctx, category, code)

	var product *models.Product
	if ret.Get(0) != nil {
		product = ret.Get(0).(*models.Product)
	}

	return product, ret.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, category models.Category, product *models.Product) error {
	ret := m.Called(ctx, category, product)

	return ret.Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, category models.Category, code string) error {
	ret := m.Called(ctx, category, code)

	return ret.Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, category models.Category, page, size int) ([]*models.Product, int, error) {
	ret := m.Called(ctx, category, page, size)

	var products []*models.Product
	if ret.Get(0) != nil {
		products = ret.Get(0).([]*models.Product)
	}

	return products, ret.Int(1), ret.Error(2)
}

func (m *ProductRepository) SetStock(ctx context.Context, category models.Category, code string, stock int) (*models.Product, error) {
	ret := m.Called(ctx, category, code, stock)

	var product *models.Product
	if ret.Get(0) != nil {
		product = ret.Get(0).(*models.Product)
	}

	return product, ret.Error(1)
}

func (m *ProductRepository) ResolveCode(ctx context.Context, code string) (models.Category, *models.Product, error) {
	ret := m.Called(ctx, code)

	var product *models.Product
	if ret.Get(1) != nil {
		product = ret.Get(1).(*models.Product)
	}

	return ret.Get(0).(models.Category), product, ret.Error(2)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := m.Called(ctx, order)

	return ret.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	ret := m.Called(ctx, id)

	var order *models.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*models.Order)
	}

	return order, ret.Error(1)
}

type NotifyRepository struct {
	mock.Mock
}

func NewNotifyRepository(t testingT) *NotifyRepository {
	m := &NotifyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *NotifyRepository) CreateRequest(ctx context.Context, req *models.NotifyRequest) error {
	ret := m.Called(ctx, req)

	return ret.Error(0)
}

func (m *NotifyRepository) ListPendingByCode(ctx context.Context, code string) ([]*models.NotifyRequest, error) {
	ret := m.Called(ctx, code)

	var requests []*models.NotifyRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]*models.NotifyRequest)
	}

	return requests, ret.Error(1)
}

func (m *NotifyRepository) MarkNotified(ctx context.Context, id int64) (bool, error) {
	ret := m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (m *NotifyRepository) ListRequests(ctx context.Context, status models.NotifyStatus, page, size int) ([]*models.NotifyRequest, int, error) {
	ret := m.Called(ctx, status, page, size)

	var requests []*models.NotifyRequest
	if ret.Get(0) != nil {
		requests = ret.Get(0).([]*models.NotifyRequest)
	}

	return requests, ret.Int(1), ret.Error(2)
}
