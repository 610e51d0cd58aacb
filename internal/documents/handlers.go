package documents

import (
	"strconv"

	"finboard-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
}

// GET /api/documents
func (h *Handlers) List(c *fiber.Ctx) error {
	docs, err := h.Service.List(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching documents")
		return response.Internal(c, "Failed to fetch documents")
	}
	return response.JSON(c, docs)
}

// GET /api/documents/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}
	doc, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching document")
		return response.Internal(c, "Failed to fetch document")
	}
	return response.JSON(c, doc)
}
