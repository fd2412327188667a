package routes

import (
	v1 "skill-insight/internal/delivery/http/routes/v1"
	"skill-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, dashboard usecase.DashboardUsecase) {
	if r == nil {
		return
	}

	v1.Register(r, dashboard)
}
