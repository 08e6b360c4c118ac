package bulkorder

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
)

// OrderType distinguishes delivery orders from customer pickups.
// Only delivery orders may be handed off to the dispatch service.
type OrderType int

const (
	// UnknownOrderType catches uninitialized values.
	UnknownOrderType OrderType = iota

	// Delivery orders are handed to the external dispatch service
	// once ready.
	Delivery

	// Pickup orders are collected by the customer.
	Pickup
)

// OrderTypeFromString maps the persisted vocabulary word to an OrderType.
func OrderTypeFromString(s string) (OrderType, error) {
	switch s {
	case "delivery":
		return Delivery, nil
	case "pickup":
		return Pickup, nil
	default:
		return UnknownOrderType, errs.NewValueIsInvalidError("order type " + s)
	}
}

// String returns the persisted vocabulary word.
func (t OrderType) String() string {
	switch t {
	case Delivery:
		return "delivery"
	case Pickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Validate checks the OrderType is one of the known values.
func (t OrderType) Validate() error {
	if t != Delivery && t != Pickup {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one line of a bulk order.
// Monetary values are carried as integer cents.
type Item struct {
	name           string
	quantity       int
	unitPriceCents int64

	isConstructed bool
}

// NewItem creates a validated order line.
// The name must be non-empty, quantity positive, and unit price non-negative.
func NewItem(name string, quantity int, unitPriceCents int64) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPriceCents < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item unit price",
			fmt.Errorf("%d is negative", unitPriceCents))
	}

	return Item{
		name:           name,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the item's name as captured at order time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPriceCents returns the per-unit price in cents.
func (i Item) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// TotalCents returns quantity times unit price.
func (i Item) TotalCents() int64 {
	return int64(i.quantity) * i.unitPriceCents
}
