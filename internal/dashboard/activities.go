package dashboard

import (
	"stokpanel-backend/internal/activity"

	"github.com/gofiber/fiber/v2"
)

type ActivityResponse struct {
	ID          string        `json:"id"`
	Type        activity.Type `json:"type"`
	ProductName string        `json:"productName"`
	Timestamp   int64         `json:"timestamp"` // unix milisaniye
	Time        string        `json:"time"`
	Details     string        `json:"details"`
}

// GET /api/dashboard/activities
// Aktivite zili/paneli için son kayıtlar, en yenisi başta.
func ActivitiesHandler(store *activity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recent := store.Recent()

		resp := make([]ActivityResponse, 0, len(recent))
		for _, a := range recent {
			resp = append(resp, ActivityResponse{
				ID:          a.ID,
				Type:        a.Type,
				ProductName: a.ProductName,
				Timestamp:   a.Timestamp,
				Time:        a.Time().Format("2006-01-02 15:04:05"),
				Details:     a.Details,
			})
		}

		return c.JSON(resp)
	}
}

// DELETE /api/dashboard/activities
func ClearActivitiesHandler(store *activity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store.ClearAll()
		return c.SendStatus(fiber.StatusNoContent)
	}
}
