package main

import (
	"fmt"
	"log"

	"inspeksi-backend/config"
	"inspeksi-backend/internal/jobs"
	"inspeksi-backend/internal/notification"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/routes"
	"inspeksi-backend/internal/storage"
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	// Push notification opsional, server tetap jalan tanpa kredensial Firebase
	fcm, err := notification.NewFCMSender(config.GetEnv("GOOGLE_APPLICATION_CREDENTIALS", ""))
	if err != nil {
		log.Printf("Warning: Firebase tidak aktif: %v", err)
		fcm = nil
	}

	dokumenStore := storage.NewLocalDokumenStore(config.GetEnv("UPLOAD_DIR", "./uploads"))

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	// Serve Static Files (Agar foto dokumen/ttd bisa dibuka via /uploads/...)
	app.Static("/uploads", "./uploads")

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupInspeksiRoutes(app, config.DB, fcm)
	routes.SetupRekapRoutes(app, config.DB, fcm)
	routes.SetupDokumenRoutes(app, dokumenStore)
	routes.SetupNotifikasiRoutes(app, config.DB)

	// Rekap harian otomatis
	inspeksiRepo := repository.NewInspeksiRepository(config.DB)
	rekapRepo := repository.NewRekapRepository(config.DB)
	notifikasiRepo := repository.NewNotifikasiRepository(config.DB)
	userRepo := repository.NewUserRepository(config.DB)
	gateway := notification.NewInboxGateway(notifikasiRepo, userRepo, fcm)
	rekapUsecase := usecase.NewRekapUsecase(rekapRepo, inspeksiRepo, gateway)

	scheduler := jobs.NewRekapScheduler(rekapUsecase,
		config.GetEnv("REKAP_PENGIRIM_NIP", "SYSTEM"),
		config.GetEnv("REKAP_PENGIRIM_NAMA", "Sistem Inspeksi"))
	if err := scheduler.Start(); err != nil {
		log.Printf("Warning: Scheduler rekap tidak aktif: %v", err)
	}

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
