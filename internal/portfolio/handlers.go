package portfolio

import (
	"errors"
	"strconv"

	"finboard-backend/internal/pkg/response"
	"finboard-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Handlers struct {
	Service *Service
}

// GET /api/portfolio
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching portfolio holdings")
		return response.Internal(c, "Failed to fetch portfolio holdings")
	}
	return response.JSON(c, out)
}

// GET /api/portfolio/user/:userId
func (h *Handlers) ListByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	out, err := h.Service.ListByUser(c.Context(), uint(userID))
	if err != nil {
		log.Error().Err(err).Msg("Error fetching user portfolio")
		return response.Internal(c, "Failed to fetch user portfolio")
	}
	return response.JSON(c, out)
}

// GET /api/portfolio/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid holding ID")
	}
	v, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Portfolio holding not found")
		}
		log.Error().Err(err).Msg("Error fetching portfolio holding")
		return response.Internal(c, "Failed to fetch portfolio holding")
	}
	return response.JSON(c, v)
}

// POST /api/portfolio
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in CreateHoldingInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	created, err := h.Service.Create(c.Context(), in)
	if err != nil {
		var ve *validation.Error
		if errors.As(err, &ve) {
			return response.BadRequest(c, ve.Detail)
		}
		log.Error().Err(err).Msg("Error creating portfolio holding")
		return response.Internal(c, "Failed to create portfolio holding")
	}
	return response.Created(c, created)
}

// PUT /api/portfolio/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid holding ID")
	}
	var in UpdateHoldingInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	updated, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Portfolio holding not found")
		default:
			log.Error().Err(err).Msg("Error updating portfolio holding")
			return response.Internal(c, "Failed to update portfolio holding")
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/portfolio/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid holding ID")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Portfolio holding not found")
		}
		log.Error().Err(err).Msg("Error deleting portfolio holding")
		return response.Internal(c, "Failed to delete portfolio holding")
	}
	return response.Message(c, "Portfolio holding deleted successfully")
}
