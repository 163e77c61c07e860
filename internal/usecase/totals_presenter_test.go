package usecase_test

import (
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestFormatTotals_TwoDecimalPlaces(t *testing.T) {
	got := usecase.FormatTotals(model.CartTotals{
		SubTotal:   f64(100),
		Shipping:   f64(10),
		Tax:        f64(5),
		ServiceFee: f64(2),
		Total:      f64(117),
	})

	assert.Equal(t, "100.00", got.SubTotal)
	assert.Equal(t, "10.00", got.Shipping)
	assert.Equal(t, "5.00", got.Tax)
	assert.Equal(t, "2.00", got.ServiceFee)
	assert.Equal(t, "117.00", got.Total)
}

// 未計算（null）はゼロ表示
func TestFormatTotals_NilRendersZero(t *testing.T) {
	got := usecase.FormatTotals(model.CartTotals{})

	assert.Equal(t, "0.00", got.SubTotal)
	assert.Equal(t, "0.00", got.Shipping)
	assert.Equal(t, "0.00", got.Tax)
	assert.Equal(t, "0.00", got.ServiceFee)
	assert.Equal(t, "0.00", got.Total)
}

func TestFormatNPR_GroupsThousands(t *testing.T) {
	assert.Equal(t, "Rs. 117.00", usecase.FormatNPR(117))
	assert.Equal(t, "Rs. 1,234.50", usecase.FormatNPR(1234.5))
	assert.Equal(t, "Rs. 2,500,000.00", usecase.FormatNPR(2500000))
}
