package mocks

import (
	"context"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if res := args.Get(0); res != nil {
		return res.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
