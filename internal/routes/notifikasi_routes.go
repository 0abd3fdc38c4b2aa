package routes

import (
	"inspeksi-backend/internal/handler"
	"inspeksi-backend/internal/middleware"
	"inspeksi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotifikasiRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewNotifikasiRepository(db)
	hdl := handler.NewNotifikasiHandler(repo)

	api := app.Group("/api/notifikasi", middleware.Auth)
	api.Get("/", hdl.Daftar)
	api.Post("/:id/read", hdl.TandaiTerbaca)
}
