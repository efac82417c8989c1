package service

import (
	"context"
	"fmt"
	"strings"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"

	"go.uber.org/zap"
)

// CreateProductRequest carries the fields accepted on product creation
type CreateProductRequest struct {
	Title               string   `json:"title"`
	Slug                string   `json:"slug"`
	ShortDescription    string   `json:"shortDescription"`
	DetailedDescription string   `json:"detailedDescription"`
	Category            string   `json:"category"`
	Photos              []string `json:"photos"`
	Stock               int      `json:"stock"`
	IsFeatured          bool     `json:"isFeatured"`
	Price               *float64 `json:"price"`
	Rating              *float64 `json:"rating"`
}

// UpdateProductRequest carries a partial update. Nil fields are left
// untouched. A slug value, if supplied, is ignored: the slug is immutable
// after creation.
type UpdateProductRequest struct {
	Title               *string   `json:"title"`
	Slug                *string   `json:"slug"`
	ShortDescription    *string   `json:"shortDescription"`
	DetailedDescription *string   `json:"detailedDescription"`
	Category            *string   `json:"category"`
	Photos              *[]string `json:"photos"`
	Stock               *int      `json:"stock"`
	IsFeatured          *bool     `json:"isFeatured"`
	Price               *float64  `json:"price"`
	Rating              *float64  `json:"rating"`
}

// ProductService owns product validation and the slug uniqueness rule
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, req CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uint, req UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productServiceImpl struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, log: log}
}

func (s *productServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productServiceImpl) Get(ctx context.Context, id uint) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *productServiceImpl) Create(ctx context.Context, req CreateProductRequest) (*model.Product, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Category = strings.TrimSpace(req.Category)

	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	count, err := s.repo.CountBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	product := &model.Product{
		Title:               req.Title,
		Slug:                req.Slug,
		ShortDescription:    req.ShortDescription,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		Photos:              req.Photos,
		Stock:               req.Stock,
		IsFeatured:          req.IsFeatured,
		Price:               req.Price,
		Rating:              req.Rating,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.String("slug", product.Slug))
	return product, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id uint, req UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The slug is read-only once set; an update that tries to change it is
	// ignored rather than rejected.
	if req.Slug != nil && *req.Slug != product.Slug {
		s.log.Warn("ignoring attempt to change product slug",
			zap.Uint("product_id", id),
			zap.String("requested_slug", *req.Slug))
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		product.Title = title
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.DetailedDescription != nil {
		product.DetailedDescription = *req.DetailedDescription
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category must not be empty", ErrValidation)
		}
		product.Category = category
	}
	if req.Photos != nil {
		product.Photos = *req.Photos
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
		}
		product.Stock = *req.Stock
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		product.Price = req.Price
	}
	if req.Rating != nil {
		product.Rating = req.Rating
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("product updated", zap.Uint("product_id", product.ID))
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", zap.Uint("product_id", id))
	return nil
}
