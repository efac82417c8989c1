package repository

import (
	"context"
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository is the persistence boundary for inquiries. List order is
// part of the contract: the admin dashboard relies on newest-first.
type InquiryRepository interface {
	List(ctx context.Context) ([]model.Inquiry, error)
	GetByID(ctx context.Context, id uint) (*model.Inquiry, error)
	Create(ctx context.Context, inquiry *model.Inquiry) error
	Save(ctx context.Context, inquiry *model.Inquiry) error
	Delete(ctx context.Context, id uint) error
}

type gormInquiryRepository struct {
	db *gorm.DB
}

func NewGormInquiryRepository(db *gorm.DB) InquiryRepository {
	return &gormInquiryRepository{db: db}
}

func (r *gormInquiryRepository) List(ctx context.Context) ([]model.Inquiry, error) {
	inquiries := []model.Inquiry{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *gormInquiryRepository) GetByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *gormInquiryRepository) Save(ctx context.Context, inquiry *model.Inquiry) error {
	return r.db.WithContext(ctx).Save(inquiry).Error
}

func (r *gormInquiryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Inquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
