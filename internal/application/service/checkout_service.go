package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/alert"
	"github.com/salepoint/salepoint-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CheckoutService is the page-level coordinator for the sale screen: it wires
// catalog browsing into the cart engine and owns the transient
// stock-violation alert. It never computes invoice amounts itself.
type CheckoutService struct {
	catalog repository.CatalogClient
	cart    *CartService
	alerts  *alert.Notifier
}

// NewCheckoutService creates the sale screen coordinator. alertTTL controls
// how long a stock-violation alert stays visible before auto-dismissing.
func NewCheckoutService(catalog repository.CatalogClient, cart *CartService, alertTTL time.Duration) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		cart:    cart,
		alerts:  alert.NewNotifier(alertTTL),
	}
}

// CartSnapshot is the read-only view of the sale screen state.
type CartSnapshot struct {
	Lines      []entity.CartLine `json:"items"`
	EditedIDs  []int             `json:"edited_products"`
	SubTotal   decimal.Decimal   `json:"sub_total"`
	StockAlert *alert.Alert      `json:"stock_alert,omitempty"`
}

// Snapshot returns the current cart lines, edited set, subtotal and any
// active stock alert.
func (s *CheckoutService) Snapshot() CartSnapshot {
	return CartSnapshot{
		Lines:      s.cart.Lines(),
		EditedIDs:  s.cart.EditedIDs(),
		SubTotal:   s.cart.Subtotal(),
		StockAlert: s.alerts.Active(),
	}
}

// AddProduct fetches the chosen product's descriptor from its category and
// adds it to the cart. Stock violations raise the transient alert and are
// returned to the caller; the cart stays unchanged.
func (s *CheckoutService) AddProduct(ctx context.Context, categoryID, productID, quantity int) error {
	products, err := s.catalog.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	var chosen *entity.ProductDescriptor
	for i := range products {
		if products[i].ID == productID {
			chosen = &products[i]
			break
		}
	}
	if chosen == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.cart.AddOrMerge(ctx, *chosen, quantity); err != nil {
		s.raiseOnStockError(err)
		return err
	}
	return nil
}

// UpdateQuantity forwards a line quantity edit to the cart engine.
func (s *CheckoutService) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	return s.cart.UpdateQuantity(ctx, productID, quantity)
}

// RenameLine applies an operator-provided display name to a line.
func (s *CheckoutService) RenameLine(ctx context.Context, productID int, newName string) error {
	return s.cart.Rename(ctx, productID, newName)
}

// AnnotateLine appends an operator note to a line's display name, producing
// "<name> - [<note>]".
func (s *CheckoutService) AnnotateLine(ctx context.Context, productID int, note string) error {
	line, ok := s.cart.Line(productID)
	if !ok {
		return apperror.NewNotFoundError("Cart line")
	}
	return s.cart.Rename(ctx, productID, fmt.Sprintf("%s - [%s]", line.Name, note))
}

// RemoveLine removes a product from the cart.
func (s *CheckoutService) RemoveLine(ctx context.Context, productID int) error {
	return s.cart.Remove(ctx, productID)
}

// ClearCart empties the cart and edited set.
func (s *CheckoutService) ClearCart(ctx context.Context) error {
	return s.cart.Clear(ctx)
}

// StockAlert returns the active stock-violation alert, if any.
func (s *CheckoutService) StockAlert() *alert.Alert {
	return s.alerts.Active()
}

func (s *CheckoutService) raiseOnStockError(err error) {
	appErr := apperror.GetAppError(err)
	switch appErr.Kind {
	case apperror.KindOutOfStock, apperror.KindInsufficientStock:
		s.alerts.Raise(appErr.Kind, appErr.Message)
	}
}
