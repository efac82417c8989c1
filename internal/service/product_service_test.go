package service

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.TODO()

	t.Run("Valid product with defaults", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("CountBySlug", ctx, "ganesha-statue").Return(int64(0), nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Product).ID = 7
		}).Return(nil).Once()

		product, err := svc.Create(ctx, CreateProductRequest{
			Title:    "Ganesha Statue",
			Slug:     "ganesha-statue",
			Category: "Marble Deities",
		})

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, uint(7), product.ID)
		assert.Equal(t, "ganesha-statue", product.Slug)
		assert.Equal(t, 0, product.Stock)
		assert.False(t, product.IsFeatured)
		assert.Nil(t, product.Price)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		cases := []CreateProductRequest{
			{Slug: "a", Category: "c"},
			{Title: "A", Category: "c"},
			{Title: "A", Slug: "a"},
			{Title: "   ", Slug: "a", Category: "c"},
		}
		for _, req := range cases {
			product, err := svc.Create(ctx, req)
			assert.Nil(t, product)
			assert.ErrorIs(t, err, ErrValidation)
		}
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate slug is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("CountBySlug", ctx, "ganesha-statue").Return(int64(1), nil).Once()

		product, err := svc.Create(ctx, CreateProductRequest{
			Title:    "Another Ganesha",
			Slug:     "ganesha-statue",
			Category: "Marble Deities",
		})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrSlugTaken)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Negative stock is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		product, err := svc.Create(ctx, CreateProductRequest{
			Title:    "A",
			Slug:     "a",
			Category: "c",
			Stock:    -1,
		})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.TODO()

	existing := func() *model.Product {
		return &model.Product{
			ID:       3,
			Title:    "Ganesha Statue",
			Slug:     "ganesha-statue",
			Category: "Marble Deities",
			Stock:    5,
		}
	}

	t.Run("Partial update leaves other fields untouched", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*model.Product")).Return(nil).Once()

		title := "Ganesha Statue (Large)"
		product, err := svc.Update(ctx, 3, UpdateProductRequest{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "Ganesha Statue (Large)", product.Title)
		assert.Equal(t, "Marble Deities", product.Category)
		assert.Equal(t, 5, product.Stock)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Slug change is silently ignored", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil).Once()
		mockRepo.On("Save", ctx, mock.AnythingOfType("*model.Product")).Return(nil).Once()

		newSlug := "different-slug"
		stock := 9
		product, err := svc.Update(ctx, 3, UpdateProductRequest{Slug: &newSlug, Stock: &stock})

		assert.NoError(t, err)
		assert.Equal(t, "ganesha-statue", product.Slug)
		assert.Equal(t, 9, product.Stock)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("GetByID", ctx, uint(99)).Return(nil, repository.ErrProductNotFound).Once()

		product, err := svc.Update(ctx, 99, UpdateProductRequest{})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("GetByID", ctx, uint(3)).Return(existing(), nil).Once()

		empty := "  "
		product, err := svc.Update(ctx, 3, UpdateProductRequest{Title: &empty})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrValidation)
		mockRepo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.TODO()

	t.Run("Existing product", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("Delete", ctx, uint(3)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repeat delete keeps returning not found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		svc := NewProductService(mockRepo, zap.NewNop())

		mockRepo.On("Delete", ctx, uint(3)).Return(repository.ErrProductNotFound).Twice()

		assert.ErrorIs(t, svc.Delete(ctx, 3), repository.ErrProductNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, 3), repository.ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.TODO()
	mockRepo := new(mocks.MockProductRepository)
	svc := NewProductService(mockRepo, zap.NewNop())

	repoErr := errors.New("connection refused")
	mockRepo.On("List", ctx).Return(nil, repoErr).Once()

	products, err := svc.List(ctx)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, repoErr)
}
