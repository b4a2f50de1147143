// Package pricing maintains the three-way consistency between an
// ingredient's quantity, unit price, discount and total price under
// single-field edits.
package pricing

import (
	"errors"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

var ErrUnknownField = errors.New("unknown ingredient field")

// Field names an editable ingredient attribute. The JSON names match the
// dashboard's edit payloads.
type Field string

const (
	FieldQuantity   Field = "quantity"
	FieldPriceUnit  Field = "priceUnit"
	FieldDiscount   Field = "discount"
	FieldPriceTotal Field = "priceTotal"
)

// Apply sets one field to the given value and re-derives whichever field
// was not directly edited, returning the updated copy. It is a pure value
// transform: the input ingredient is not mutated and no validation beyond
// field dispatch happens here. Out-of-range discounts are stored as given;
// clamping is a display concern.
//
// A priceTotal edit is interpreted as already including the discount, so
// the unit price is back-solved from it. Two degenerate edges are handled
// by explicit policy rather than errors: a discount factor <= 0 forces the
// unit price to 0, and a zero quantity leaves the unit price unchanged.
func Apply(ing models.Ingredient, field Field, value float64) (models.Ingredient, error) {
	switch field {
	case FieldQuantity:
		ing.Quantity = value
		ing.PriceTotal = ing.PriceUnit * ing.Quantity * discountFactor(ing.Discount)
	case FieldPriceUnit:
		ing.PriceUnit = value
		ing.PriceTotal = ing.PriceUnit * ing.Quantity * discountFactor(ing.Discount)
	case FieldDiscount:
		ing.Discount = value
		ing.PriceTotal = ing.PriceUnit * ing.Quantity * discountFactor(ing.Discount)
	case FieldPriceTotal:
		ing.PriceTotal = value
		df := discountFactor(ing.Discount)
		switch {
		case df <= 0:
			ing.PriceUnit = 0
		case ing.Quantity > 0:
			ing.PriceUnit = (value / df) / ing.Quantity
		}
		// Quantity == 0: nothing to back-solve, leave PriceUnit as is.
	default:
		return ing, ErrUnknownField
	}
	return ing, nil
}

func discountFactor(discount float64) float64 {
	return 1 - discount/100
}
