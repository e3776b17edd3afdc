package pricing

import (
	"github.com/shopspring/decimal"
)

// DefaultVATRate is applied when no rate is configured.
var DefaultVATRate = decimal.RequireFromString("0.18")

const moneyPlaces = 2

// Quote is the complete price breakdown for a stay.
type Quote struct {
	RoomTotal  decimal.Decimal `json:"room_total"`
	MealTotal  decimal.Decimal `json:"meal_total"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	VAT        decimal.Decimal `json:"vat"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Calculator computes booking quotes with a fixed VAT rate.
type Calculator struct {
	vatRate decimal.Decimal
}

func NewCalculator(vatRate decimal.Decimal) *Calculator {
	if vatRate.IsZero() {
		vatRate = DefaultVATRate
	}

	return &Calculator{vatRate: vatRate}
}

// Quote prices a stay of the given nights and room count. Meals are billed
// per room per night, the same as the nightly rate.
func (c *Calculator) Quote(ratePerNight decimal.Decimal, mealPrices []decimal.Decimal, nights, rooms int) Quote {
	multiplier := decimal.NewFromInt(int64(nights)).Mul(decimal.NewFromInt(int64(rooms)))

	roomTotal := ratePerNight.Mul(multiplier)

	mealTotal := decimal.Zero
	for _, price := range mealPrices {
		mealTotal = mealTotal.Add(price.Mul(multiplier))
	}

	subtotal := roomTotal.Add(mealTotal)
	vat := subtotal.Mul(c.vatRate).Round(moneyPlaces)
	grandTotal := subtotal.Add(vat).Round(moneyPlaces)

	return Quote{
		RoomTotal:  roomTotal.Round(moneyPlaces),
		MealTotal:  mealTotal.Round(moneyPlaces),
		Subtotal:   subtotal.Round(moneyPlaces),
		VAT:        vat,
		GrandTotal: grandTotal,
	}
}
