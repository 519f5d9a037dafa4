package entity

import (
	"strconv"
	"strings"
	"time"
)

// Product is a catalog entry identified by a store-assigned id.
// Name is globally unique, price is always positive, description may be null.
type Product struct {
	ID          string
	Name        string
	Description *string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceString renders a price as its shortest decimal representation,
// e.g. 10 -> "10", 10.5 -> "10.5". Price filtering compares against this
// rendering, not against the numeric value.
func PriceString(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// PriceHasPrefix reports whether the decimal-string rendering of price
// starts with prefix. Filtering by "10" matches 10, 100 and 105 but not
// 9 or 210.
func PriceHasPrefix(price float64, prefix string) bool {
	return strings.HasPrefix(PriceString(price), prefix)
}
