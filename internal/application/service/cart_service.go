package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CartService owns the sale in progress: the ordered list of cart lines and
// the set of operator-annotated product ids. It is the single source of truth
// for cart state; other components read it through snapshots only.
//
// All mutations run under one mutex so the in-memory cart and the durable
// write behave as a single-writer sequence even on a multi-threaded server.
type CartService struct {
	mu     sync.Mutex
	repo   repository.CartRepository
	lines  []entity.CartLine
	edited map[int]struct{}
}

// NewCartService creates an empty cart bound to its durable store. Call
// Restore to load the previous session's state.
func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{
		repo:   repo,
		edited: make(map[int]struct{}),
	}
}

// Restore loads the last successfully persisted cart and edited set. A
// missing or unreadable store yields an empty cart, never an error mid-sale.
func (s *CartService) Restore(ctx context.Context) error {
	lines, editedIDs, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	s.edited = make(map[int]struct{}, len(editedIDs))
	for _, id := range editedIDs {
		s.edited[id] = struct{}{}
	}
	return nil
}

// AddOrMerge adds a product to the cart or, when a line for the same product
// already exists, increases that line's quantity. The add path hard-rejects
// stock violations: a product with no sellable stock fails with OutOfStock,
// and a merge that would exceed the ceiling captured when the line was first
// created fails with InsufficientStock. The cart is unchanged on failure.
func (s *CartService) AddOrMerge(ctx context.Context, product entity.ProductDescriptor, requestedQty int) error {
	if requestedQty < 1 {
		return apperror.NewBadRequestError("Quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.Stock <= 0 || requestedQty > product.Stock {
		return apperror.NewOutOfStockError(product.Name)
	}

	if idx := s.indexOf(product.ID); idx >= 0 {
		line := s.lines[idx]
		newQty := line.Quantity + requestedQty
		// The merge re-checks against the ceiling captured at first add, not
		// the possibly-stale stock figure on this call's descriptor.
		if newQty > line.StockCeiling {
			return apperror.NewInsufficientStockError(line.Name, line.StockCeiling)
		}
		s.lines[idx].Quantity = newQty
	} else {
		s.lines = append(s.lines, entity.CartLine{
			ProductID:    product.ID,
			Name:         product.Name,
			Price:        product.Price,
			Quantity:     requestedQty,
			StockCeiling: product.Stock,
			CategoryID:   product.CategoryID,
			VAT:          product.VAT,
			SD:           product.SD,
		})
	}

	return s.persistLocked(ctx)
}

// UpdateQuantity sets the quantity of an existing line. Negative input is
// floored to 0 rather than rejected, and quantities above the stock ceiling
// are tolerated in memory (the UI flags them); the persistence step drops
// over-ceiling lines from the durable write, so they vanish on reload.
// Unknown product ids are ignored.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, newQuantity int) error {
	if newQuantity < 0 {
		newQuantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}
	s.lines[idx].Quantity = newQuantity

	return s.persistLocked(ctx)
}

// Rename replaces a line's display name and records the product id as
// operator-annotated. Price, quantity and category are untouched.
func (s *CartService) Rename(ctx context.Context, productID int, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return apperror.NewNotFoundError("Cart line")
	}
	s.lines[idx].Name = newName
	s.edited[productID] = struct{}{}

	return s.persistLocked(ctx)
}

// Remove drops the line for the given product, along with its edited-set
// entry. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	delete(s.edited, productID)

	return s.persistLocked(ctx)
}

// Clear empties the cart and the edited set together.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.edited = make(map[int]struct{})

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart store: %w", err)
	}
	return nil
}

// Subtotal returns Σ price × quantity over the current lines, recomputed on
// every call.
func (s *CartService) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.CartSubtotal(s.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Line returns the cart line for a product id, if present.
func (s *CartService) Line(productID int) (entity.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(productID); idx >= 0 {
		return s.lines[idx], true
	}
	return entity.CartLine{}, false
}

// EditedIDs returns the operator-annotated product ids in ascending order.
func (s *CartService) EditedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editedIDsLocked()
}

func (s *CartService) editedIDsLocked() []int {
	ids := make([]int, 0, len(s.edited))
	for id := range s.edited {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *CartService) indexOf(productID int) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// persistLocked writes the current state to durable storage. Lines whose
// quantity exceeds their stock ceiling are excluded from the write; they stay
// visible in memory so the operator sees the violation, but a reload never
// resurrects them.
func (s *CartService) persistLocked(ctx context.Context) error {
	persistable := make([]entity.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		if !l.OverCeiling() {
			persistable = append(persistable, l)
		}
	}

	if err := s.repo.Save(ctx, persistable, s.editedIDsLocked()); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
