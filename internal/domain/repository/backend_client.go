package repository

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
)

// CatalogClient reads categories and products from the remote catalog API.
// Product descriptors are point-in-time snapshots; callers must not assume
// the stock figures stay valid.
type CatalogClient interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]entity.ProductDescriptor, error)
}

// SalesClient submits finalized sales to the remote sales API. A successful
// submission returns the invoice number the backend assigned.
type SalesClient interface {
	SubmitSale(ctx context.Context, sale *entity.FinalizedSale) (invoiceNo string, err error)
}
