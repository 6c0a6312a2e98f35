package analytics

import (
	"testing"

	"stokpanel-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(quantities ...int) []models.StockItem {
	out := make([]models.StockItem, 0, len(quantities))
	for i, q := range quantities {
		out = append(out, models.StockItem{
			ID:       uint(i + 1),
			ItemName: "Item",
			Quantity: models.Quantity(q),
		})
	}
	return out
}

func TestCompute_EmptyCollection(t *testing.T) {
	result := Compute(nil, 4)

	assert.Equal(t, 0, result.TotalStockCount)
	assert.Equal(t, 0, result.TotalQuantity)
	// Sıfıra bölme yok: boş koleksiyonda ortalama 0
	assert.Equal(t, 0.0, result.AvgStock)
	assert.Equal(t, 0, result.LowStockCount)
	assert.Empty(t, result.LowStockItems)
}

func TestCompute_ZeroQuantityIsNotLowStock(t *testing.T) {
	// Spec senaryosu: [3, 0, 10], eşik 4 → sadece 3 düşük stok
	result := Compute(items(3, 0, 10), 4)

	require.Len(t, result.LowStockItems, 1)
	assert.Equal(t, models.Quantity(3), result.LowStockItems[0].Quantity)
	assert.Equal(t, 1, result.LowStockCount)
}

func TestCompute_LowStockBoundary(t *testing.T) {
	result := Compute(items(1, 4, 5), 4)

	// 0 < q <= 4: 1 ve 4 girer, 5 girmez
	require.Len(t, result.LowStockItems, 2)
	assert.Equal(t, 2, result.LowStockCount)
}

func TestCompute_Totals(t *testing.T) {
	result := Compute(items(3, 0, 10), 4)

	assert.Equal(t, 3, result.TotalStockCount)
	assert.Equal(t, 13, result.TotalQuantity)
	assert.Equal(t, 4.3, result.AvgStock) // 13/3 = 4.333... → 4.3
}

func TestCompute_AvgStockRounding(t *testing.T) {
	assert.Equal(t, 2.5, Compute(items(2, 3), 4).AvgStock)
	assert.Equal(t, 1.7, Compute(items(1, 2, 2), 4).AvgStock) // 5/3 = 1.666... → 1.7
}

func TestCompute_CountMatchesItems(t *testing.T) {
	cases := [][]int{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{0, 0, 0},
		{4, 4, 4, 4},
		{100, 1},
	}

	for _, qs := range cases {
		result := Compute(items(qs...), 4)
		assert.Equal(t, len(result.LowStockItems), result.LowStockCount)
		for _, item := range result.LowStockItems {
			assert.Greater(t, int(item.Quantity), 0)
			assert.LessOrEqual(t, int(item.Quantity), 4)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	data := items(3, 0, 10, 4, 7)

	first := Compute(data, 4)
	second := Compute(data, 4)
	assert.Equal(t, first, second)
}

func TestCompute_InvalidThresholdFallsBack(t *testing.T) {
	result := Compute(items(3), 0)
	assert.Equal(t, DefaultLowStockThreshold, result.LowStockThreshold)
}
