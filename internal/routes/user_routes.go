package routes

import (
	httpdelivery "inspeksi-backend/internal/delivery/http"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := httpdelivery.NewUserHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
