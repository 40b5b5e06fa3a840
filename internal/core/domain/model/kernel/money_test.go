package kernel_test

import (
	"math"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("converts decimal amounts to cents", func(t *testing.T) {
		cases := []struct {
			amount float64
			cents  int64
		}{
			{0, 0},
			{3.99, 399},
			{10, 1000},
			{28.99, 2899},
			{0.005, 1}, // rounds to nearest cent
			{-2.50, -250},
		}

		for _, tc := range cases {
			m, err := kernel.NewMoneyFromFloat(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents(), "amount %v", tc.amount)
		}
	})

	t.Run("rejects non-finite amounts", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewMoneyFromFloat(amount)
			require.Error(t, err)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("addition is exact", func(t *testing.T) {
		subtotal := kernel.NewMoneyFromCents(2500)
		fee, err := kernel.NewMoneyFromFloat(3.99)
		require.NoError(t, err)

		total := subtotal.Add(fee)

		assert.Equal(t, int64(2899), total.Cents())
		assert.InDelta(t, 28.99, total.Float64(), 0.0001)
	})

	t.Run("multiplication by quantity", func(t *testing.T) {
		price := kernel.NewMoneyFromCents(1050)

		assert.Equal(t, int64(3150), price.MultiplyBy(3).Cents())
		assert.True(t, price.MultiplyBy(0).IsZero())
	})
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, kernel.NewMoneyFromCents(-1).IsNegative())
	assert.False(t, kernel.NewMoneyFromCents(0).IsNegative())
	assert.True(t, kernel.NewMoneyFromCents(0).IsZero())
	assert.True(t, kernel.NewMoneyFromCents(399).IsEqual(kernel.NewMoneyFromCents(399)))
	assert.False(t, kernel.NewMoneyFromCents(399).IsEqual(kernel.NewMoneyFromCents(400)))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "28.99", kernel.NewMoneyFromCents(2899).String())
	assert.Equal(t, "0.00", kernel.Money{}.String())
}
