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

func SetupInspeksiRoutes(app *fiber.App, db *gorm.DB, fcm *notification.FCMSender) {
	inspeksiRepo := repository.NewInspeksiRepository(db)
	notifikasiRepo := repository.NewNotifikasiRepository(db)
	userRepo := repository.NewUserRepository(db)

	gateway := notification.NewInboxGateway(notifikasiRepo, userRepo, fcm)
	approval := usecase.NewApprovalUsecase(inspeksiRepo, gateway)

	hdl := handler.NewInspeksiHandler(approval, inspeksiRepo)

	api := app.Group("/api/inspeksi", middleware.Auth)

	// Endpoint untuk Petugas Lapangan
	api.Post("/", middleware.Role(model.RolePetugas), hdl.Buat)
	api.Get("/", hdl.Daftar)
	api.Get("/:id", hdl.Detail)
	api.Delete("/:id", middleware.Role(model.RolePetugas), hdl.HapusDraft)
	api.Post("/:id/submit", middleware.Role(model.RolePetugas), hdl.Submit)

	// Endpoint untuk Manager (Approval)
	api.Post("/:id/approve-traffic", middleware.Role(model.RoleManagerTraffic), hdl.ApproveTraffic)
	api.Post("/:id/approve-operational", middleware.Role(model.RoleManagerOperational), hdl.ApproveOperational)
	api.Post("/:id/reject", middleware.Role(model.RoleManagerTraffic, model.RoleManagerOperational), hdl.Reject)
}
