// Package storage menyimpan foto dokumen dan tanda tangan. Core hanya
// menyimpan referensinya; isi file tidak pernah dibaca lagi oleh state machine.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"inspeksi-backend/internal/apperr"
)

// DokumenStore menerima bytes mentah dan mengembalikan referensi yang stabil
type DokumenStore interface {
	Simpan(data []byte, jenis string) (string, error)
}

// LocalDokumenStore menyimpan file di disk lokal. Nama file diambil dari
// sha256 isi file, jadi isi yang sama selalu menghasilkan referensi yang sama.
type LocalDokumenStore struct {
	BaseDir string
}

func NewLocalDokumenStore(baseDir string) *LocalDokumenStore {
	return &LocalDokumenStore{BaseDir: baseDir}
}

func (s *LocalDokumenStore) Simpan(data []byte, jenis string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: file kosong", apperr.ErrValidation)
	}
	if jenis == "" {
		jenis = "lainnya"
	}

	sum := sha256.Sum256(data)
	nama := hex.EncodeToString(sum[:])

	dir := filepath.Join(s.BaseDir, jenis)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrDependency, err)
	}

	path := filepath.Join(dir, nama)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("%w: %v", apperr.ErrDependency, err)
		}
	}

	// Referensi memakai path relatif agar bisa langsung dilayani via /uploads
	return filepath.ToSlash(filepath.Join("uploads", jenis, nama)), nil
}
