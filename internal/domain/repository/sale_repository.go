package repository

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/pkg/pagination"
)

// SaleRepository stores the terminal's local journal of accepted sales.
type SaleRepository interface {
	Create(ctx context.Context, record *entity.SaleRecord) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.SaleRecord, int64, error)
}

// SaleFilterParams contains filtering parameters for journal queries.
// FormDate/ToDate are inclusive YYYY-MM-DD bounds on the entry date.
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	FormDate   string
	ToDate     string
	InvoiceNo  string
}
