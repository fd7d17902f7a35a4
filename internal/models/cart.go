package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// CartSlots is the number of catalog item slots every cart carries.
// Item ids are stringified integers in [0, CartSlots).
const CartSlots = 300

// Cart maps a catalog item id to the quantity a user holds.
type Cart map[string]int

// NewCart returns a cart with every slot initialized to zero.
func NewCart() Cart {
	cart := make(Cart, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

// ValidItemID reports whether an item id falls inside the cart's slot range.
func ValidItemID(itemID int) bool {
	return itemID >= 0 && itemID < CartSlots
}

// Quantity returns the held quantity for an item id, zero if the slot is absent.
func (c Cart) Quantity(itemID int) int {
	return c[strconv.Itoa(itemID)]
}

// Value serializes the cart to JSON for database storage.
func (c Cart) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart: %w", err)
	}
	return string(data), nil
}

// Scan deserializes a cart from its database representation.
func (c *Cart) Scan(value interface{}) error {
	if value == nil {
		*c = NewCart()
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported cart column type %T", value)
	}
	return json.Unmarshal(data, c)
}
