package repository

import (
	"context"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
)

// CartRepository is the durable store for the in-progress sale. Load is
// called once at startup; Save is called synchronously after every committed
// cart mutation and must write the cart lines and the edited-product set
// atomically, so a restart restores exactly the last successful write.
type CartRepository interface {
	Load(ctx context.Context) (lines []entity.CartLine, editedIDs []int, err error)
	Save(ctx context.Context, lines []entity.CartLine, editedIDs []int) error
	Clear(ctx context.Context) error
}
