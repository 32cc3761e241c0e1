// Package mocks provides a testify mock for the cache interface.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type Cache struct {
	mock.Mock
}

func NewCache(t testingT) *Cache {
	m := &Cache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := m.Called(ctx, key, value)

	return ret.Bool(0), ret.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := m.Called(ctx, key, value, ttl)

	return ret.Error(0)
}

func (m *Cache) Delete(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)

	return ret.Error(0)
}

func (m *Cache) Close() error {
	ret := m.Called()

	return ret.Error(0)
}
