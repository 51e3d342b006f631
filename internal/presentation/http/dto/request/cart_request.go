package request

// AddCartItemRequest adds a product from a category to the cart.
type AddCartItemRequest struct {
	CategoryID int `json:"category_id" binding:"required"`
	ProductID  int `json:"product_id" binding:"required"`
	Quantity   int `json:"quantity"`
}

// UpdateQuantityRequest sets a cart line's quantity. Negative values are
// floored to zero server-side.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// RenameLineRequest renames a cart line. Either a full replacement name or an
// annotation to append may be supplied; Name wins when both are present.
type RenameLineRequest struct {
	Name   string `json:"name"`
	Append string `json:"append"`
}
