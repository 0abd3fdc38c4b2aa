package routes

import (
	"inspeksi-backend/internal/handler"
	"inspeksi-backend/internal/middleware"
	"inspeksi-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupDokumenRoutes(app *fiber.App, store storage.DokumenStore) {
	hdl := handler.NewDokumenHandler(store)

	api := app.Group("/api/dokumen", middleware.Auth)
	api.Post("/", hdl.Upload)
}
