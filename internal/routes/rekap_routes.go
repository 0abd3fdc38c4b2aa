package routes

import (
	"inspeksi-backend/internal/handler"
	"inspeksi-backend/internal/middleware"
	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/notification"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRekapRoutes(app *fiber.App, db *gorm.DB, fcm *notification.FCMSender) {
	rekapRepo := repository.NewRekapRepository(db)
	inspeksiRepo := repository.NewInspeksiRepository(db)
	notifikasiRepo := repository.NewNotifikasiRepository(db)
	userRepo := repository.NewUserRepository(db)

	gateway := notification.NewInboxGateway(notifikasiRepo, userRepo, fcm)
	rekap := usecase.NewRekapUsecase(rekapRepo, inspeksiRepo, gateway)

	hdl := handler.NewRekapHandler(rekap, rekapRepo, userRepo)

	api := app.Group("/api/rekap", middleware.Auth)

	// Rekap dikirim petugas atau manager traffic ke jenjang di atasnya
	api.Post("/", middleware.Role(model.RolePetugas, model.RoleManagerTraffic), hdl.Buat)
	api.Get("/", hdl.Daftar)
	api.Post("/:id/read", middleware.Role(model.RoleManagerTraffic, model.RoleManagerOperational), hdl.TandaiTerbaca)
}
