package handler

import (
	"errors"
	"strconv"
	"time"

	"inspeksi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotifikasiHandler struct {
	repo repository.NotifikasiRepository
}

func NewNotifikasiHandler(repo repository.NotifikasiRepository) *NotifikasiHandler {
	return &NotifikasiHandler{repo: repo}
}

func (h *NotifikasiHandler) Daftar(c *fiber.Ctx) error {
	nip := c.Locals("nip").(string)
	role := c.Locals("role").(string)

	list, err := h.repo.ListByPenerima(nip, role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil notifikasi",
		"data":    list,
	})
}

func (h *NotifikasiHandler) TandaiTerbaca(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	nip := c.Locals("nip").(string)
	role := c.Locals("role").(string)

	// Notifikasi milik penerima lain diperlakukan seperti tidak ada
	notifikasi, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notifikasi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}
	if notifikasi.NIPTujuan != nip && notifikasi.RoleTujuan != role {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notifikasi tidak ditemukan"})
	}

	if _, err := h.repo.MarkRead(uint(id), nip, role, time.Now()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update notifikasi"})
	}

	return c.JSON(fiber.Map{"message": "Notifikasi ditandai terbaca"})
}
