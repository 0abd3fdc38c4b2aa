package http

import (
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Nama     string `json:"nama"`
		NIP      string `json:"nip"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Jabatan  string `json:"jabatan"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Input salah"})
	}

	err := h.usecase.Register(input.Nama, input.NIP, input.Password, input.Role, input.Jabatan)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Gagal registrasi: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User berhasil terdaftar!"})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		NIP           string `json:"nip"`
		Password      string `json:"password"`
		FirebaseToken string `json:"firebase_token"` // Dari aplikasi mobile
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	token, nama, err := h.usecase.Login(input.NIP, input.Password, input.FirebaseToken)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "NIP atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login Berhasil!",
		"token":   token,
		"nama":    nama,
	})
}
