package main

import (
	"log"
	"strings"
	"time"

	"stokpanel-backend/internal/activity"
	"stokpanel-backend/internal/auth"
	"stokpanel-backend/internal/config"
	"stokpanel-backend/internal/dashboard"
	"stokpanel-backend/internal/database"
	"stokpanel-backend/internal/kvstore"
	"stokpanel-backend/internal/product"
	"stokpanel-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env varsa yükle

	cfg := config.Load()
	database.Init(cfg)

	// Aktivite altyapısı: paylaşılan depo + yayılım kanalı + log store'u.
	// Store açıkken kanalın doğrudan yuvasına kayıtlıdır ve tetikleyici
	// kaydını yoklar; kapatıldığında zamanlayıcı da durur.
	kv := kvstore.NewGormStore(database.DB)
	channel := activity.NewChannel(kv)
	store := activity.NewStore(kv, channel, activity.LogNotifier{}, time.Duration(cfg.ActivityPollInterval)*time.Millisecond)
	store.Start()
	defer store.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Stok yönetimi (mutasyonlar başarı sonrası aktivite yayınlar)
	protected.Get("/stock", stock.ListStockHandler())
	protected.Get("/stock/:id", stock.GetStockHandler())
	protected.Post("/stock", stock.CreateStockHandler(channel))
	protected.Put("/stock/:id", stock.UpdateStockHandler(channel))
	protected.Delete("/stock/:id", stock.DeleteStockHandler(channel))

	// Ürün yönetimi
	protected.Get("/products", product.ListProductsHandler())
	protected.Get("/products/:id", product.GetProductHandler())
	protected.Post("/products", product.CreateProductHandler())
	protected.Put("/products/:id", product.UpdateProductHandler())
	protected.Delete("/products/:id", product.DeleteProductHandler())

	// Dashboard
	protected.Get("/dashboard/stock-analytics", dashboard.StockAnalyticsHandler(cfg))
	protected.Get("/dashboard/activities", dashboard.ActivitiesHandler(store))
	protected.Delete("/dashboard/activities", dashboard.ClearActivitiesHandler(store))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
