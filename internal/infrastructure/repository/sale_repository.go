package repository

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	domainRepo "github.com/salepoint/salepoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a sale journal repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, record *entity.SaleRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.SaleRecord, int64, error) {
	var records []entity.SaleRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleRecord{})

	if params.FormDate != "" {
		query = query.Where("entry_date >= ?", params.FormDate)
	}
	if params.ToDate != "" {
		query = query.Where("entry_date <= ?", params.ToDate)
	}
	if params.InvoiceNo != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.InvoiceNo+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&records).Error

	return records, total, err
}
