package service

import (
	"context"
	stdErrors "errors"

	"github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type NotifyService interface {
	CreateRequest(ctx context.Context, req *models.CreateNotifyMeRequest) (*models.NotifyRequest, error)
	ListRequests(ctx context.Context, status string, page, size int) ([]*models.NotifyRequest, int, error)
}

type notifyService struct {
	productRepo repository.ProductRepository
	notifyRepo  repository.NotifyRepository
	sanitizer   *bluemonday.Policy
}

func NewNotifyService(productRepo repository.ProductRepository, notifyRepo repository.NotifyRepository) NotifyService {
	return &notifyService{
		productRepo: productRepo,
		notifyRepo:  notifyRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// CreateRequest files a notify-me request. The category is resolved from the
// code against every product table; whatever the client claimed is ignored,
// so a request can never be mis-filed against the wrong table.
func (s *notifyService) CreateRequest(ctx context.Context, req *models.CreateNotifyMeRequest) (*models.NotifyRequest, error) {

	if req.Customer.Email == "" && req.Customer.Phone == "" {
		return nil, errors.ValidationError("Provide an email or phone number to be notified on")
	}

	category, product, err := s.productRepo.ResolveCode(ctx, req.Product.Code)
	if err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.BadRequestError("Unknown product code: " + req.Product.Code).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to resolve product code").WithError(err)
	}

	request := &models.NotifyRequest{
		ProductID:       product.ID,
		ProductCode:     product.Code,
		ProductName:     product.Name,
		ProductBrand:    product.Brand,
		ProductPrice:    product.Price,
		ProductCategory: category,
		ProductGender:   product.Gender,
		CustomerName:    s.sanitizer.Sanitize(req.Customer.Name),
		Email:           req.Customer.Email,
		Phone:           req.Customer.Phone,
		Status:          models.NotifyStatusPending,
	}

	if err := s.notifyRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.DatabaseError("Failed to save notify request").WithError(err)
	}

	return request, nil
}

func (s *notifyService) ListRequests(ctx context.Context, status string, page, size int) ([]*models.NotifyRequest, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	var notifyStatus models.NotifyStatus

	if status != "" {
		switch models.NotifyStatus(status) {
		case models.NotifyStatusPending, models.NotifyStatusNotified, models.NotifyStatusExpired:
			notifyStatus = models.NotifyStatus(status)
		default:
			return nil, 0, errors.ValidationError("Invalid status filter: " + status)
		}
	}

	requests, total, err := s.notifyRepo.ListRequests(ctx, notifyStatus, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list notify requests").WithError(err)
	}

	return requests, total, nil
}
