package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed web/index.html
var indexHTML []byte

// PageHandler serves the single-page dashboard that drives the view API.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Index)
}

func (h *PageHandler) Index(c fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(indexHTML)
}
