package service

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
)

// CatalogService exposes the remote catalog to the sale screen.
type CatalogService struct {
	catalog repository.CatalogClient
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repository.CatalogClient) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListCategories returns the purchasable categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}

// ListProducts returns the products belonging to a category, as point-in-time
// descriptors.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID int) ([]entity.ProductDescriptor, error) {
	products, err := s.catalog.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.ProductDescriptor{}
	}
	return products, nil
}
