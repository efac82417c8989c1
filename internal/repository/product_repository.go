package repository

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the persistence boundary for products. Implementations
// are stateless; every call is an independent round trip to the store.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	CountBySlug(ctx context.Context, slug string) (int64, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type gormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormProductRepository) CountBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (r *gormProductRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *gormProductRepository) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *gormProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
