package service

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/pagination"
)

// SaleService reads the terminal's local journal of accepted sales.
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// ListSales lists journaled sales filtered by entry-date range and invoice
// number.
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.SaleRecord], error) {
	records, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}
