package product

import (
	"context"
	"math"
	"strings"
	"time"

	"stokpanel-backend/internal/database"
	"stokpanel-backend/internal/models"
	"stokpanel-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

const mutationTimeout = 10 * time.Second

type CreateProductRequest struct {
	ProductName  string  `json:"product_name"`
	CostTotal    float64 `json:"cost_total"`
	SellingPrice float64 `json:"selling_price"`
}

type UpdateProductRequest struct {
	ProductName  *string  `json:"product_name"`
	CostTotal    *float64 `json:"cost_total"`
	SellingPrice *float64 `json:"selling_price"`
}

type ListProductsResponse struct {
	Items        []models.Product `json:"items"`
	CurrentPage  int              `json:"current_page"`
	TotalPages   int              `json:"total_pages"`
	PerPage      int              `json:"per_page"`
	TotalRecords int              `json:"total_records"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Kâr alanlarını maliyet ve satış fiyatından türet
func applyProfit(p *models.Product) {
	p.Profit = round2(p.SellingPrice - p.CostTotal)
	if p.SellingPrice > 0 {
		p.ProfitMargin = round2(p.Profit / p.SellingPrice * 100)
	} else {
		p.ProfitMargin = 0
	}
}

// GET /api/products?search=pizza&page=1&per_page=10
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := strings.TrimSpace(c.Query("search"))
		page := c.QueryInt("page", 1)
		perPage := c.QueryInt("per_page", 10)
		if perPage < 1 {
			perPage = 10
		}

		dbq := database.DB.Model(&models.Product{})
		if search != "" {
			dbq = dbq.Where("product_name ILIKE ?", "%"+search+"%")
		}

		var products []models.Product
		if err := dbq.Order("product_name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		pager := pagination.New(products, perPage)
		pager.Paginate(page)

		return c.JSON(ListProductsResponse{
			Items:        pager.CurrentRecords(),
			CurrentPage:  pager.CurrentPage(),
			TotalPages:   pager.TotalPages(),
			PerPage:      perPage,
			TotalRecords: len(products),
		})
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		return c.JSON(p)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		body.ProductName = strings.TrimSpace(body.ProductName)
		if body.ProductName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "product_name zorunlu")
		}
		if body.CostTotal < 0 || body.SellingPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Maliyet ve fiyat negatif olamaz")
		}

		p := models.Product{
			ProductName:  body.ProductName,
			CostTotal:    body.CostTotal,
			SellingPrice: body.SellingPrice,
		}
		applyProfit(&p)

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.ProductName != nil {
			name := strings.TrimSpace(*body.ProductName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "product_name boş olamaz")
			}
			p.ProductName = name
		}
		if body.CostTotal != nil {
			if *body.CostTotal < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Maliyet negatif olamaz")
			}
			p.CostTotal = *body.CostTotal
		}
		if body.SellingPrice != nil {
			if *body.SellingPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			p.SellingPrice = *body.SellingPrice
		}
		applyProfit(&p)

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		ctx, cancel := context.WithTimeout(c.Context(), mutationTimeout)
		defer cancel()

		if err := database.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
