package assets

import (
	"errors"
	"strconv"

	"finboard-backend/internal/pkg/response"
	"finboard-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Handlers struct {
	Service *Service
}

// GET /api/assets
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching assets")
		return response.Internal(c, "Failed to fetch assets")
	}
	return response.JSON(c, out)
}

// GET /api/assets/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid asset ID")
	}
	a, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Asset not found")
		}
		log.Error().Err(err).Msg("Error fetching asset")
		return response.Internal(c, "Failed to fetch asset")
	}
	return response.JSON(c, a)
}

// GET /api/assets/symbol/:symbol
func (h *Handlers) GetBySymbol(c *fiber.Ctx) error {
	a, err := h.Service.GetBySymbol(c.Context(), c.Params("symbol"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Asset not found")
		}
		log.Error().Err(err).Msg("Error fetching asset")
		return response.Internal(c, "Failed to fetch asset")
	}
	return response.JSON(c, a)
}

// POST /api/assets
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in CreateAssetInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	a, err := h.Service.Create(c.Context(), in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return response.Conflict(c, "Asset symbol already exists")
		default:
			log.Error().Err(err).Msg("Error creating asset")
			return response.Internal(c, "Failed to create asset")
		}
	}
	return response.Created(c, a)
}

// PUT /api/assets/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid asset ID")
	}
	var in UpdateAssetInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	a, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			return response.BadRequest(c, ve.Detail)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Asset not found")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return response.Conflict(c, "Asset symbol already exists")
		default:
			log.Error().Err(err).Msg("Error updating asset")
			return response.Internal(c, "Failed to update asset")
		}
	}
	return response.JSON(c, a)
}

// DELETE /api/assets/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid asset ID")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Asset not found")
		}
		log.Error().Err(err).Msg("Error deleting asset")
		return response.Internal(c, "Failed to delete asset")
	}
	return response.Message(c, "Asset deleted successfully")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
