package handler

import (
	"io"

	"inspeksi-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type DokumenHandler struct {
	store storage.DokumenStore
}

func NewDokumenHandler(store storage.DokumenStore) *DokumenHandler {
	return &DokumenHandler{store: store}
}

// Upload menerima satu file (foto dokumen atau tanda tangan) dan
// mengembalikan referensi untuk ditempel di payload inspeksi
func (h *DokumenHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak ditemukan"})
	}

	jenis := c.FormValue("jenis") // stnk / kir / sim / ttd / service / bbm

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak bisa dibaca"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File tidak bisa dibaca"})
	}

	ref, err := h.store.Simpan(data, jenis)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Dokumen berhasil disimpan",
		"referensi": ref,
	})
}
