package handler

import (
	"strconv"
	"time"

	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type RekapHandler struct {
	rekap     *usecase.RekapUsecase
	rekapRepo repository.RekapRepository
	userRepo  *repository.UserRepository
}

func NewRekapHandler(rekap *usecase.RekapUsecase, rekapRepo repository.RekapRepository, userRepo *repository.UserRepository) *RekapHandler {
	return &RekapHandler{rekap: rekap, rekapRepo: rekapRepo, userRepo: userRepo}
}

type BuatRekapRequest struct {
	Judul          string `json:"judul"`
	TipePeriode    string `json:"tipe_periode"`
	PeriodeMulai   string `json:"periode_mulai"`   // 2006-01-02
	PeriodeSelesai string `json:"periode_selesai"` // 2006-01-02
	Kategori       string `json:"kategori"`
	RoleTujuan     string `json:"role_tujuan"`
	Catatan        string `json:"catatan"`
}

func (h *RekapHandler) Buat(c *fiber.Ctx) error {
	var req BuatRekapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	mulai, err := time.Parse("2006-01-02", req.PeriodeMulai)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Periode mulai tidak valid"})
	}
	selesai, err := time.Parse("2006-01-02", req.PeriodeSelesai)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Periode selesai tidak valid"})
	}
	// Batas akhir inklusif sampai akhir hari
	selesai = selesai.Add(24*time.Hour - time.Second)

	nip := c.Locals("nip").(string)
	pengirim, err := h.userRepo.GetByNIP(nip)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	rekap, err := h.rekap.BuatRekap(usecase.BuatRekapParams{
		Judul:          req.Judul,
		TipePeriode:    req.TipePeriode,
		PeriodeMulai:   mulai,
		PeriodeSelesai: selesai,
		Kategori:       req.Kategori,
		PengirimNIP:    pengirim.NIP,
		NamaPengirim:   pengirim.Nama,
		RoleTujuan:     req.RoleTujuan,
		Catatan:        req.Catatan,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Rekap berhasil dibuat dan dikirim",
		"data":    rekap,
	})
}

func (h *RekapHandler) Daftar(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	nip := c.Locals("nip").(string)

	// Manager melihat rekap yang dialamatkan ke role-nya, petugas melihat
	// rekap yang pernah dia kirim
	var list []model.Rekap
	var err error
	if role == model.RolePetugas {
		list, err = h.rekapRepo.ListByPengirim(nip)
	} else {
		list, err = h.rekapRepo.ListByRoleTujuan(role)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekap"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar rekap",
		"data":    list,
	})
}

func (h *RekapHandler) TandaiTerbaca(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	rekap, err := h.rekap.MarkRead(uint(id), c.Locals("role").(string))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Rekap ditandai terbaca",
		"data":    rekap,
	})
}
