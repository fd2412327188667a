package v1

import (
	"skill-insight/internal/delivery/http/handler"
	"skill-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, dashboard usecase.DashboardUsecase) {
	if r == nil || dashboard == nil {
		return
	}

	handler.NewDashboardHandler(dashboard).RegisterRoutes(r)
}
