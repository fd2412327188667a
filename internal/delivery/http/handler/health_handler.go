package handler

import (
	"skill-insight/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	postings func() int
}

func NewHealthHandler(postings func() int) *HealthHandler {
	return &HealthHandler{postings: postings}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{"status": "up"}
	if h.postings != nil {
		data["postings"] = h.postings()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
