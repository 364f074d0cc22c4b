package model

import "time"

// User adalah cermin data akun di server. Perubahan hanya lewat
// respons server baru, tidak pernah dimutasi lokal.
type User struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Photo      string    `json:"photo"`
	PhotoThumb string    `json:"photo_thumb"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Mahasiswa adalah data akademik pendamping akun.
type Mahasiswa struct {
	Prodi    string `json:"prodi"`
	Angkatan string `json:"angkatan"`
	Status   string `json:"status"`
}
