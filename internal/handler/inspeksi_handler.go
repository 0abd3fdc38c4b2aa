package handler

import (
	"strconv"
	"time"

	"inspeksi-backend/internal/model"
	"inspeksi-backend/internal/repository"
	"inspeksi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type InspeksiHandler struct {
	approval     *usecase.ApprovalUsecase
	inspeksiRepo repository.InspeksiRepository
}

func NewInspeksiHandler(approval *usecase.ApprovalUsecase, inspeksiRepo repository.InspeksiRepository) *InspeksiHandler {
	return &InspeksiHandler{approval: approval, inspeksiRepo: inspeksiRepo}
}

type BuatInspeksiRequest struct {
	model.Inspeksi
	LangsungSubmit bool `json:"langsung_submit"`
}

func (h *InspeksiHandler) Buat(c *fiber.Ctx) error {
	var req BuatInspeksiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	inspeksi, err := h.approval.Create(&req.Inspeksi, req.LangsungSubmit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan inspeksi berhasil disimpan",
		"data":    inspeksi,
	})
}

func (h *InspeksiHandler) Daftar(c *fiber.Ctx) error {
	filter := repository.InspeksiFilter{
		Status:   c.Query("status"),
		Kategori: c.Query("kategori"),
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
	}

	if mulai := c.Query("tanggal_mulai"); mulai != "" {
		if t, err := time.Parse("2006-01-02", mulai); err == nil {
			filter.TanggalMulai = &t
		}
	}
	if selesai := c.Query("tanggal_selesai"); selesai != "" {
		if t, err := time.Parse("2006-01-02", selesai); err == nil {
			filter.TanggalSelesai = &t
		}
	}

	// Petugas hanya melihat laporannya sendiri; manager bisa melihat semua
	if c.Locals("role").(string) == model.RolePetugas {
		filter.PetugasNIP = c.Locals("nip").(string)
	} else if petugas := c.Query("petugas"); petugas != "" {
		filter.PetugasNIP = petugas
	}

	list, err := h.inspeksiRepo.ListByFilter(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar inspeksi",
		"data":    list,
	})
}

func (h *InspeksiHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	inspeksi, err := h.inspeksiRepo.GetByID(uint(id))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil detail inspeksi",
		"data":    inspeksi,
	})
}

func (h *InspeksiHandler) HapusDraft(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	nip := c.Locals("nip").(string)
	if err := h.approval.DeleteDraft(uint(id), nip); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Draft berhasil dihapus"})
}

func (h *InspeksiHandler) Submit(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	nip := c.Locals("nip").(string)
	inspeksi, err := h.approval.Submit(uint(id), nip)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan inspeksi berhasil dikirim",
		"data":    inspeksi,
	})
}

type ApprovalRequest struct {
	TTD string `json:"ttd"` // referensi tanda tangan approver
}

func (h *InspeksiHandler) ApproveTraffic(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	nip := c.Locals("nip").(string)
	inspeksi, err := h.approval.ApproveByTraffic(uint(id), nip, req.TTD)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan disetujui manager traffic",
		"data":    inspeksi,
	})
}

func (h *InspeksiHandler) ApproveOperational(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req ApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	nip := c.Locals("nip").(string)
	inspeksi, err := h.approval.ApproveByOperational(uint(id), nip, req.TTD)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan disetujui manager operational",
		"data":    inspeksi,
	})
}

type RejectRequest struct {
	Alasan string `json:"alasan"`
}

func (h *InspeksiHandler) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Role penolak diambil dari token, bukan dari payload
	var rejectingRole string
	switch c.Locals("role").(string) {
	case model.RoleManagerTraffic:
		rejectingRole = model.RejectedByTraffic
	case model.RoleManagerOperational:
		rejectingRole = model.RejectedByOperational
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Hanya manager yang boleh menolak"})
	}

	inspeksi, err := h.approval.Reject(uint(id), rejectingRole, req.Alasan)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Laporan ditolak",
		"data":    inspeksi,
	})
}
