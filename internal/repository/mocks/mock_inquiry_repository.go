package mocks

import (
	"context"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]model.Inquiry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Inquiry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) Save(ctx context.Context, inquiry *model.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
