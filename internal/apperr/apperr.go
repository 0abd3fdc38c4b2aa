// Package apperr berisi taksonomi error internal. Handler memetakan
// sentinel di sini ke kode HTTP lewat errors.Is.
package apperr

import "errors"

var (
	// ErrValidation: input tidak lengkap/tidak valid, belum ada mutasi apapun
	ErrValidation = errors.New("data tidak valid")

	// ErrNotFound: record yang dirujuk tidak ada
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrInvalidState: transisi tidak cocok dengan status tersimpan saat ini
	// (termasuk kalah race dengan approval lain). Bukan kegagalan sistem.
	ErrInvalidState = errors.New("status inspeksi tidak sesuai")

	// ErrDependency: repository/penyimpanan dokumen bermasalah
	ErrDependency = errors.New("layanan pendukung bermasalah")
)
