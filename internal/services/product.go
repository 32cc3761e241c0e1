package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/atlasboutique/storefront-platform/internal/cache"
	"github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

const productCacheTTL = 5 * time.Minute

type ProductService interface {
	CreateProduct(ctx context.Context, category string, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, category, code string) (*models.Product, error)
	UpdateProduct(ctx context.Context, category, code string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, category, code string) error
	ListProducts(ctx context.Context, category string, page, size int) ([]*models.Product, int, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       cache.Cache
	sanitizer   *bluemonday.Policy
}

func NewProductService(productRepo repository.ProductRepository, productCache cache.Cache) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, categoryStr string, req *models.CreateProductRequest) (*models.Product, error) {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, errors.ValidationError("Invalid category: " + categoryStr)
	}

	product := &models.Product{
		Code:        req.Code,
		Name:        req.Name,
		Brand:       req.Brand,
		Description: s.sanitizer.Sanitize(req.Description),
		Gender:      req.Gender,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}

	if err := s.productRepo.CreateProduct(ctx, category, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, categoryStr, code string) (*models.Product, error) {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, errors.ValidationError("Invalid category: " + categoryStr)
	}

	cacheKey := cache.Key(cache.ProductKeyPrefix, category.String()+":"+code)

	var cached models.Product

	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		slog.Warn("Product cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
	}

	product, err := s.productRepo.GetProductByCode(ctx, category, code)
	if err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found: " + code).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, product, productCacheTTL); err != nil {
		slog.Warn("Product cache write failed", slog.String("key", cacheKey), slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, categoryStr, code string, req *models.UpdateProductRequest) (*models.Product, error) {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, errors.ValidationError("Invalid category: " + categoryStr)
	}

	product, err := s.productRepo.GetProductByCode(ctx, category, code)
	if err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found: " + code).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Brand != nil {
		product.Brand = *req.Brand
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Gender != nil {
		product.Gender = *req.Gender
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.productRepo.UpdateProduct(ctx, category, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, category, code)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, categoryStr, code string) error {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return errors.ValidationError("Invalid category: " + categoryStr)
	}

	if err := s.productRepo.DeleteProduct(ctx, category, code); err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Product not found: " + code).WithError(err)
		}

		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, category, code)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, categoryStr string, page, size int) ([]*models.Product, int, error) {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, 0, errors.ValidationError("Invalid category: " + categoryStr)
	}

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	products, total, err := s.productRepo.ListProducts(ctx, category, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidate(ctx context.Context, category models.Category, code string) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, category.String()+":"+code)

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		slog.Warn("Product cache invalidation failed", slog.String("key", cacheKey), slog.Any("error", err))
	}
}
