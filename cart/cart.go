// Package cart holds the client-side shopping cart: a value type persisted in
// a browser cookie and mutated only through Apply, a pure reducer over a
// closed set of actions.
package cart

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction     = errors.New("cart: unknown action type")
	ErrInsufficientStock = errors.New("cart: insufficient stock")
)

// LineItem is a single cart entry. Slug is the identity: a cart never holds
// two lines with the same slug.
type LineItem struct {
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	StockQuantity int     `json:"stockQuantity,omitempty"` // last known stock, informational only
}

// Address is the checkout shipping address as stored in the cookie.
type Address struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Cart struct {
	Items           []LineItem `json:"cartItems"`
	ShippingAddress Address    `json:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod"`
}

type ActionType int

const (
	AddItem ActionType = iota + 1
	RemoveItem
	ClearItems
	SaveShippingAddress
	SavePaymentMethod
)

// Action is a tagged transition command. Only the payload field matching the
// type is read.
type Action struct {
	Type    ActionType
	Item    LineItem // AddItem
	Slug    string   // RemoveItem
	Address Address  // SaveShippingAddress
	Method  string   // SavePaymentMethod
}

// Apply returns the cart after the given action. The receiver value is never
// mutated; item slices are copied before any change.
func Apply(c Cart, a Action) (Cart, error) {
	switch a.Type {
	case AddItem:
		items := make([]LineItem, len(c.Items))
		copy(items, c.Items)
		replaced := false
		for i, it := range items {
			if it.Slug == a.Item.Slug {
				// Same slug replaces the whole line, quantities never sum.
				items[i] = a.Item
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, a.Item)
		}
		c.Items = items
		return c, nil

	case RemoveItem:
		items := make([]LineItem, 0, len(c.Items))
		for _, it := range c.Items {
			if it.Slug != a.Slug {
				items = append(items, it)
			}
		}
		c.Items = items
		return c, nil

	case ClearItems:
		// Address and payment method deliberately survive clearing, so a
		// returning customer can reorder without re-entering checkout info.
		c.Items = []LineItem{}
		return c, nil

	case SaveShippingAddress:
		c.ShippingAddress = mergeAddress(c.ShippingAddress, a.Address)
		return c, nil

	case SavePaymentMethod:
		c.PaymentMethod = a.Method
		return c, nil

	default:
		return Cart{}, fmt.Errorf("%w: %d", ErrUnknownAction, a.Type)
	}
}

// mergeAddress overlays non-empty fields of next onto prev.
func mergeAddress(prev, next Address) Address {
	if next.FullName != "" {
		prev.FullName = next.FullName
	}
	if next.Address != "" {
		prev.Address = next.Address
	}
	if next.City != "" {
		prev.City = next.City
	}
	if next.PostalCode != "" {
		prev.PostalCode = next.PostalCode
	}
	if next.Country != "" {
		prev.Country = next.Country
	}
	return prev
}

// ValidateQuantity gates every quantity-changing mutation. The available
// count must come from a fresh product lookup, never from the stock number
// cached in the cookie.
func ValidateQuantity(requested, available int) error {
	if requested < 1 {
		return fmt.Errorf("cart: quantity must be at least 1, got %d", requested)
	}
	if available < requested {
		return ErrInsufficientStock
	}
	return nil
}
