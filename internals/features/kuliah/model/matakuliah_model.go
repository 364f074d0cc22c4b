package model

import "time"

// Matakuliah yang sedang diambil mahasiswa.
type Matakuliah struct {
	KodeMatakuliah string `json:"kode_matakuliah"`
	NamaMatakuliah string `json:"nama_matakuliah"`
}

// Modul adalah referensi file materi. File dibuka lewat handler URL
// eksternal, tidak pernah diunduh atau diparse oleh aplikasi.
type Modul struct {
	ID        int       `json:"id"`
	Judul     string    `json:"judul"`
	CreatedAt time.Time `json:"created_at"`
	FileURL   string    `json:"file_url"`
}
