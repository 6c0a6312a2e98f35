package stock

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"stokpanel-backend/internal/activity"
	"stokpanel-backend/internal/database"
	"stokpanel-backend/internal/models"
	"stokpanel-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// Mutasyon çağrıları için açık zaman aşımı. Orijinal panelde zaman aşımı hiç
// yoktu, bilinçli bir ekleme.
const mutationTimeout = 10 * time.Second

type CreateStockRequest struct {
	ItemName  string          `json:"item_name"`
	Quantity  models.Quantity `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	SKU       string          `json:"sku"`
}

type UpdateStockRequest struct {
	ItemName  *string          `json:"item_name"`
	Quantity  *models.Quantity `json:"quantity"`
	UnitPrice *float64         `json:"unit_price"`
	SKU       *string          `json:"sku"`
}

type ListStockResponse struct {
	Items        []models.StockItem `json:"items"`
	CurrentPage  int                `json:"current_page"`
	TotalPages   int                `json:"total_pages"`
	PerPage      int                `json:"per_page"`
	TotalRecords int                `json:"total_records"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GET /api/stock?search=widget&page=2&per_page=10
func ListStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := strings.TrimSpace(c.Query("search"))
		page := c.QueryInt("page", 1)
		perPage := c.QueryInt("per_page", 10)
		if perPage < 1 {
			perPage = 10
		}

		dbq := database.DB.Model(&models.StockItem{})
		if search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where("item_name ILIKE ? OR sku ILIKE ?", like, like)
		}

		var items []models.StockItem
		if err := dbq.Order("id asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok listelenemedi")
		}

		pager := pagination.New(items, perPage)
		pager.Paginate(page)

		return c.JSON(ListStockResponse{
			Items:        pager.CurrentRecords(),
			CurrentPage:  pager.CurrentPage(),
			TotalPages:   pager.TotalPages(),
			PerPage:      perPage,
			TotalRecords: len(items),
		})
	}
}

// GET /api/stock/:id
func GetStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.StockItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		return c.JSON(item)
	}
}

// POST /api/stock
// Aktivite, yazma işlemi veritabanı tarafından ONAYLANDIKTAN sonra yayınlanır.
// Başarısız mutasyon için aktivite üretilmez.
func CreateStockHandler(ch *activity.Channel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.ItemName = strings.TrimSpace(body.ItemName)
		body.SKU = strings.TrimSpace(body.SKU)

		if body.ItemName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_name zorunlu")
		}
		if body.Quantity < 0 || body.UnitPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Miktar ve fiyat negatif olamaz")
		}

		item := models.StockItem{
			ItemName:   body.ItemName,
			Quantity:   body.Quantity,
			UnitPrice:  body.UnitPrice,
			TotalPrice: round2(float64(body.Quantity) * body.UnitPrice),
			SKU:        body.SKU,
		}

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok eklenemedi")
		}

		ch.Publish(activity.TypeAdd, item.ItemName,
			fmt.Sprintf("Quantity: %d, Unit price: %.2f", int(item.Quantity), item.UnitPrice))

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/stock/:id
func UpdateStockHandler(ch *activity.Channel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.StockItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		var body UpdateStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.ItemName != nil {
			name := strings.TrimSpace(*body.ItemName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "item_name boş olamaz")
			}
			item.ItemName = name
		}
		if body.Quantity != nil {
			if *body.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Miktar negatif olamaz")
			}
			item.Quantity = *body.Quantity
		}
		if body.UnitPrice != nil {
			if *body.UnitPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			item.UnitPrice = *body.UnitPrice
		}
		if body.SKU != nil {
			item.SKU = strings.TrimSpace(*body.SKU)
		}

		item.TotalPrice = round2(float64(item.Quantity) * item.UnitPrice)

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok güncellenemedi")
		}

		ch.Publish(activity.TypeUpdate, item.ItemName,
			fmt.Sprintf("Quantity: %d, Unit price: %.2f", int(item.Quantity), item.UnitPrice))

		return c.JSON(item)
	}
}

// DELETE /api/stock/:id
func DeleteStockHandler(ch *activity.Channel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Aktivite için ürün adı gerekiyor, önce kaydı çek
		var item models.StockItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Delete(&models.StockItem{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok silinemedi")
		}

		ch.Publish(activity.TypeDelete, item.ItemName,
			fmt.Sprintf("Quantity: %d removed from inventory", int(item.Quantity)))

		return c.SendStatus(fiber.StatusNoContent)
	}
}
