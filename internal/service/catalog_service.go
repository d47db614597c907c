package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/observability"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// ProductCache caches the full product listing. A nil cache disables caching.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductInput describes catalog create/update payloads.
type ProductInput struct {
	Code        string
	Name        string
	Category    string
	PriceCLP    int
	Description string
	Image       string
	Featured    bool
}

// CatalogService coordinates product catalog workflows.
type CatalogService struct {
	products repository.ProductRepository
	cache    ProductCache
	logger   *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(products repository.ProductRepository, cache ProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, cache: cache, logger: logger}
}

// ListProducts serves the catalog, preferring the cache. Cache failures fall
// through to the database.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetProducts(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if hit {
			observability.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		observability.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}

// CreateProduct adds a catalog item. Codes are unique; a duplicate is a conflict.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Code:        input.Code,
		Name:        input.Name,
		Category:    input.Category,
		PriceCLP:    input.PriceCLP,
		Description: input.Description,
		Image:       input.Image,
		Featured:    input.Featured,
	}
	if err := s.products.Create(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("product code already exists", map[string]any{"code": input.Code})
		}
		return nil, apperrors.NewInternalError(err)
	}
	s.invalidate(ctx)
	return product, nil
}

// UpdateProduct replaces the mutable fields of a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Code = input.Code
	product.Name = input.Name
	product.Category = input.Category
	product.PriceCLP = input.PriceCLP
	product.Description = input.Description
	product.Image = input.Image
	product.Featured = input.Featured

	if err := s.products.Update(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("product code already exists", map[string]any{"code": input.Code})
		}
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	s.invalidate(ctx)
	return product, nil
}

// DeleteProduct removes a catalog item.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("product", map[string]any{"id": id})
		}
		return apperrors.NewInternalError(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
