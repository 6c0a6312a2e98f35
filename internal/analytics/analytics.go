package analytics

import (
	"math"

	"stokpanel-backend/internal/models"
)

// DefaultLowStockThreshold: Dashboard'un varsayılan düşük stok eşiği
const DefaultLowStockThreshold = 4

type StockAnalytics struct {
	TotalStockCount   int                `json:"totalStockCount"`
	TotalQuantity     int                `json:"totalQuantity"`
	AvgStock          float64            `json:"avgStock"`
	LowStockCount     int                `json:"lowStockCount"`
	LowStockItems     []models.StockItem `json:"lowStockItems"`
	LowStockThreshold int                `json:"lowStockThreshold"`
}

// Compute: Stok koleksiyonundan dashboard metriklerini türetir. Saf fonksiyon,
// her çağrıda yeniden hesaplanır.
//
// Düşük stok sınırı: 0 < quantity <= threshold. Miktarı sıfır olan kayıtlar
// "stok bitti" sayılır, düşük stok listesine GİRMEZ.
func Compute(items []models.StockItem, threshold int) StockAnalytics {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	totalQuantity := 0
	lowStockItems := make([]models.StockItem, 0)

	for _, item := range items {
		q := int(item.Quantity)
		totalQuantity += q

		if q > 0 && q <= threshold {
			lowStockItems = append(lowStockItems, item)
		}
	}

	// Ortalama stok: tek ondalık basamağa yuvarlanır, boş koleksiyonda 0
	avgStock := 0.0
	if len(items) > 0 {
		avgStock = math.Round(float64(totalQuantity)/float64(len(items))*10) / 10
	}

	return StockAnalytics{
		TotalStockCount:   len(items),
		TotalQuantity:     totalQuantity,
		AvgStock:          avgStock,
		LowStockCount:     len(lowStockItems),
		LowStockItems:     lowStockItems,
		LowStockThreshold: threshold,
	}
}

// LowStockItems: Sadece düşük stok listesi gerektiğinde kullanılır.
func LowStockItems(items []models.StockItem, threshold int) []models.StockItem {
	return Compute(items, threshold).LowStockItems
}
