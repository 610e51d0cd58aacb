package dashboard

import (
	"finboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
}

// GET /api/dashboard/metrics
func (h *Handlers) GetMetrics(c *fiber.Ctx) error {
	m, err := h.Service.Metrics(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching dashboard metrics")
		return response.Internal(c, "Failed to fetch metrics")
	}
	return response.JSON(c, m)
}

// GET /api/dashboard/visitors
func (h *Handlers) GetVisitors(c *fiber.Ctx) error {
	series, err := h.Service.Visitors(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching visitor data")
		return response.Internal(c, "Failed to fetch visitor data")
	}
	return response.JSON(c, series)
}

// GET /api/dashboard/portfolio-summary
func (h *Handlers) GetPortfolioSummary(c *fiber.Ctx) error {
	rows, err := h.Service.PortfolioSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching portfolio summary")
		return response.Internal(c, "Failed to fetch portfolio summary")
	}
	return response.JSON(c, rows)
}

// GET /api/dashboard/user-activity
func (h *Handlers) GetUserActivity(c *fiber.Ctx) error {
	rows, err := h.Service.UserActivityRollup(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching user activity")
		return response.Internal(c, "Failed to fetch user activity")
	}
	return response.JSON(c, rows)
}
