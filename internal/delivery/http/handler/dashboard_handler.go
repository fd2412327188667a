package handler

import (
	"errors"
	"strconv"
	"strings"

	"skill-insight/internal/delivery/http/dto"
	"skill-insight/internal/delivery/http/middleware"
	"skill-insight/internal/pkg/response"
	"skill-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dataset", h.Dataset)

	grp := r.Group("/views")
	grp.Get("/", h.List)
	grp.Post("/"+string(usecase.ViewRoadmap), h.SubmitRoadmap)
	grp.Get("/:view", h.Render)
}

func (h *DashboardHandler) List(c fiber.Ctx) error {
	views := h.uc.Views()
	out := make([]dto.ViewLinkResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ViewLinkResponse{
			ID:    string(v.ID),
			Title: v.Title,
			Href:  "/api/v1/views/" + string(v.ID),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *DashboardHandler) Dataset(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.Summary())
}

func (h *DashboardHandler) Render(c fiber.Ctx) error {
	submitted, err := parseQueryBool(c, "submit")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sel := usecase.Selection{
		Skill:     c.Query("skill"),
		Role:      c.Query("role"),
		Skills:    c.Query("skills"),
		Submitted: submitted,
	}

	res, err := h.uc.Render(c.Context(), usecase.View(c.Params("view")), sel)
	if err != nil {
		return mapDashboardUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *DashboardHandler) SubmitRoadmap(c fiber.Ctx) error {
	var req dto.RoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Render(c.Context(), usecase.ViewRoadmap, usecase.Selection{
		Role:      req.TargetRole,
		Skills:    req.Skills,
		Submitted: true,
	})
	if err != nil {
		return mapDashboardUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Roadmap generated", res)
}

func parseQueryBool(c fiber.Ctx, key string) (bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func mapDashboardUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownView):
		return middleware.NewAppError(fiber.StatusNotFound, "View not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
