package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers serves the liveness check and the detailed stats view. Rdb and DB
// may be nil; Check never touches either.
type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// CheckBody is the liveness response.
type CheckBody struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Check GET /api/health — 200 {status, timestamp} regardless of store state.
func (h *Handlers) Check(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(CheckBody{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}

// GetStats GET /api/health/stats — runtime, traffic and dependency status.
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Collect(c.Context(), h.Rdb, h.DB))
}
