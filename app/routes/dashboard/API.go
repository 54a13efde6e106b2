package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devasathya74/pmsrbl/app/config"
	"github.com/devasathya74/pmsrbl/app/database"
	"github.com/devasathya74/pmsrbl/app/routes/helpers"
)

// GetStatsAPI returns the admin landing-page counters in one round trip.
func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(c.Context(), config.GetStore())
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(stats)
}
