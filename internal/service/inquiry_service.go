package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog-service/internal/model"
	"catalog-service/internal/notify"
	"catalog-service/internal/repository"

	"go.uber.org/zap"
)

// NotificationDispatcher is the async handoff point for inquiry
// notifications. *notify.Dispatcher satisfies it.
type NotificationDispatcher interface {
	Dispatch(msg notify.Message)
}

// CreateInquiryRequest carries a public inquiry submission. ProductID is the
// raw client-supplied value; it may be malformed or dangling and neither case
// aborts the write.
type CreateInquiryRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// InquiryService owns inquiry validation, product snapshotting and the
// status transition rule
type InquiryService interface {
	List(ctx context.Context) ([]model.Inquiry, error)
	Get(ctx context.Context, id uint) (*model.Inquiry, error)
	Create(ctx context.Context, req CreateInquiryRequest) (*model.Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error)
	Delete(ctx context.Context, id uint) error
}

type inquiryServiceImpl struct {
	repo       repository.InquiryRepository
	products   repository.ProductRepository
	dispatcher NotificationDispatcher
	log        *zap.Logger
}

func NewInquiryService(repo repository.InquiryRepository, products repository.ProductRepository, dispatcher NotificationDispatcher, log *zap.Logger) InquiryService {
	return &inquiryServiceImpl{
		repo:       repo,
		products:   products,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (s *inquiryServiceImpl) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *inquiryServiceImpl) Get(ctx context.Context, id uint) (*model.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new inquiry. When a product reference is supplied it is
// resolved and the product's current fields are copied into the inquiry as a
// point-in-time snapshot. A reference that is malformed or does not resolve
// is treated the same way: the inquiry is stored without one. Inquiries must
// never be lost over a bad product reference.
func (s *inquiryServiceImpl) Create(ctx context.Context, req CreateInquiryRequest) (*model.Inquiry, error) {
	var product *model.Product
	var productID *uint

	if raw := strings.TrimSpace(req.ProductID); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			s.log.Warn("inquiry references a malformed product id, proceeding without reference",
				zap.String("product_id", raw))
		} else {
			id := uint(id64)
			product, err = s.products.GetByID(ctx, id)
			switch {
			case err == nil:
				productID = &id
			case errors.Is(err, repository.ErrProductNotFound):
				s.log.Warn("inquiry references an unknown product, proceeding without reference",
					zap.Uint("product_id", id))
				product = nil
			default:
				return nil, err
			}
		}
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	inquiry := &model.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		ProductID: productID,
		Status:    model.StatusNew,
	}
	if product != nil {
		snapshot := model.ProductSnapshot(*product)
		inquiry.ProductSnapshot = &snapshot
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.log.Info("inquiry created",
		zap.Uint("inquiry_id", inquiry.ID),
		zap.Bool("has_product_reference", productID != nil))

	// The write has succeeded; notification is a best-effort side effect
	s.dispatcher.Dispatch(buildNotification(inquiry, product, req.ProductID))

	return inquiry, nil
}

func (s *inquiryServiceImpl) UpdateStatus(ctx context.Context, id uint, status string) (*model.Inquiry, error) {
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inquiry.Status = status
	if err := s.repo.Save(ctx, inquiry); err != nil {
		return nil, err
	}

	s.log.Info("inquiry status updated",
		zap.Uint("inquiry_id", id),
		zap.String("status", status))
	return inquiry, nil
}

func (s *inquiryServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("inquiry deleted", zap.Uint("inquiry_id", id))
	return nil
}

func buildNotification(inquiry *model.Inquiry, product *model.Product, rawProductID string) notify.Message {
	title := "Unknown Product"
	if product != nil {
		title = product.Title
	}
	return notify.Message{
		Subject: "New Inquiry: " + title,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage:\n%s\n\nProduct ID (Raw): %s",
			inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message, rawProductID),
	}
}
