package domain

// Pure cart transitions. Every function returns a fresh slice and leaves
// its input untouched, so the store can swap the cart atomically.

// AddItem increments the quantity of the line holding product.ID, or
// appends a new line with quantity 1. The cart never holds two lines for
// the same product id.
func AddItem(cart []QuoteItem, product Product) []QuoteItem {
	for i, item := range cart {
		if item.Product.ID == product.ID {
			next := make([]QuoteItem, len(cart))
			copy(next, cart)
			next[i].Quantity++
			return next
		}
	}
	next := make([]QuoteItem, len(cart), len(cart)+1)
	copy(next, cart)
	return append(next, QuoteItem{Product: product, Quantity: 1})
}

// RemoveItem drops the line holding productID, if any.
func RemoveItem(cart []QuoteItem, productID string) []QuoteItem {
	next := make([]QuoteItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// UpdateQuantity applies delta to the line holding productID, flooring at
// quantity 1. Dropping a line is RemoveItem's job, not a negative delta's.
func UpdateQuantity(cart []QuoteItem, productID string, delta int) []QuoteItem {
	next := make([]QuoteItem, len(cart))
	copy(next, cart)
	for i, item := range next {
		if item.Product.ID == productID {
			q := item.Quantity + delta
			if q < 1 {
				q = 1
			}
			next[i].Quantity = q
		}
	}
	return next
}
