package pricing_test

import (
	"testing"

	"innkeep/internal/domains/booking/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCalculator_Quote(t *testing.T) {
	calc := pricing.NewCalculator(d("0.18"))

	tests := []struct {
		name       string
		rate       string
		meals      []string
		nights     int
		rooms      int
		roomTotal  string
		mealTotal  string
		subtotal   string
		vat        string
		grandTotal string
	}{
		{
			name:       "two nights one room with breakfast",
			rate:       "150.00",
			meals:      []string{"15.00"},
			nights:     2,
			rooms:      1,
			roomTotal:  "300.00",
			mealTotal:  "30.00",
			subtotal:   "330.00",
			vat:        "59.40",
			grandTotal: "389.40",
		},
		{
			name:       "three nights two rooms with dinner",
			rate:       "50.00",
			meals:      []string{"10.00"},
			nights:     3,
			rooms:      2,
			roomTotal:  "300.00",
			mealTotal:  "60.00",
			subtotal:   "360.00",
			vat:        "64.80",
			grandTotal: "424.80",
		},
		{
			name:       "no meals",
			rate:       "80.00",
			meals:      nil,
			nights:     1,
			rooms:      1,
			roomTotal:  "80.00",
			mealTotal:  "0.00",
			subtotal:   "80.00",
			vat:        "14.40",
			grandTotal: "94.40",
		},
		{
			name:       "multiple meals billed per room per night",
			rate:       "100.00",
			meals:      []string{"12.50", "20.00"},
			nights:     2,
			rooms:      3,
			roomTotal:  "600.00",
			mealTotal:  "195.00",
			subtotal:   "795.00",
			vat:        "143.10",
			grandTotal: "938.10",
		},
		{
			name:       "fractional vat rounds to cents",
			rate:       "33.33",
			meals:      nil,
			nights:     1,
			rooms:      1,
			roomTotal:  "33.33",
			mealTotal:  "0.00",
			subtotal:   "33.33",
			vat:        "6.00",
			grandTotal: "39.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mealPrices := make([]decimal.Decimal, len(tt.meals))
			for i, m := range tt.meals {
				mealPrices[i] = d(m)
			}

			quote := calc.Quote(d(tt.rate), mealPrices, tt.nights, tt.rooms)

			assert.True(t, d(tt.roomTotal).Equal(quote.RoomTotal), "room total: want %s got %s", tt.roomTotal, quote.RoomTotal)
			assert.True(t, d(tt.mealTotal).Equal(quote.MealTotal), "meal total: want %s got %s", tt.mealTotal, quote.MealTotal)
			assert.True(t, d(tt.subtotal).Equal(quote.Subtotal), "subtotal: want %s got %s", tt.subtotal, quote.Subtotal)
			assert.True(t, d(tt.vat).Equal(quote.VAT), "vat: want %s got %s", tt.vat, quote.VAT)
			assert.True(t, d(tt.grandTotal).Equal(quote.GrandTotal), "grand total: want %s got %s", tt.grandTotal, quote.GrandTotal)
		})
	}
}

func TestCalculator_QuoteZeroRateFallsBackToDefault(t *testing.T) {
	calc := pricing.NewCalculator(decimal.Zero)

	quote := calc.Quote(d("100.00"), nil, 1, 1)

	assert.True(t, d("18.00").Equal(quote.VAT))
	assert.True(t, d("118.00").Equal(quote.GrandTotal))
}

func TestCalculator_QuoteAdditivity(t *testing.T) {
	calc := pricing.NewCalculator(d("0.18"))

	quote := calc.Quote(d("75.50"), []decimal.Decimal{d("9.99")}, 4, 2)

	assert.True(t, quote.Subtotal.Equal(quote.RoomTotal.Add(quote.MealTotal)))
	assert.True(t, quote.GrandTotal.Equal(quote.Subtotal.Add(quote.VAT)))
}
