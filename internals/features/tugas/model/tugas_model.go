package model

import (
	"fmt"
	"strconv"
	"time"
)

// Tugas adalah tugas milik satu matakuliah. Seluruh field dimiliki server;
// klien hanya menurunkan status terlambat dari deadline saat fetch.
type Tugas struct {
	KodeTugas      string    `json:"kode_tugas"`
	Judul          string    `json:"judul"`
	Deskripsi      string    `json:"deskripsi"`
	Deadline       time.Time `json:"deadline"`
	SudahKumpul    bool      `json:"sudah_kumpul"`
	Nilai          *float64  `json:"nilai,omitempty"`
	FileTugasURL   string    `json:"file_tugas_url,omitempty"`
	NamaMatakuliah string    `json:"nama_matakuliah,omitempty"`
}

// Expired dievaluasi sekali pada saat data diterima, tidak live.
func (t Tugas) Expired(now time.Time) bool {
	return now.After(t.Deadline)
}

func (t Tugas) StatusLabel() string {
	if t.SudahKumpul {
		return "Selesai"
	}
	return "Belum"
}

func (t Tugas) NilaiLabel() string {
	if t.Nilai == nil {
		return ""
	}
	return "Nilai: " + strconv.FormatFloat(*t.Nilai, 'f', -1, 64)
}

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggal menampilkan tanggal gaya id-ID, contoh: 17 Agustus 2025.
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// FormatTanggalJam seperti FormatTanggal ditambah jam WIB.
func FormatTanggalJam(t time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d WIB", FormatTanggal(t), t.Hour(), t.Minute())
}
