package dashboard

import (
	"stokpanel-backend/internal/analytics"
	"stokpanel-backend/internal/config"
	"stokpanel-backend/internal/database"
	"stokpanel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stock-analytics?threshold=4
// Metrikler her istekte güncel stok koleksiyonundan yeniden hesaplanır,
// sunucu tarafında önbellek tutulmaz.
func StockAnalyticsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threshold := c.QueryInt("threshold", cfg.LowStockThreshold)

		var items []models.StockItem
		if err := database.DB.Order("id asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok verisi okunamadı")
		}

		return c.JSON(analytics.Compute(items, threshold))
	}
}
