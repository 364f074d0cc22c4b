package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store menyimpan satu bearer token di file lokal.
// Satu token per instalasi; login baru menimpa token lama.
// Tidak ada expiry tracking dan tidak ada refresh token.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Get membaca token tersimpan. String kosong berarti belum login.
// File yang tidak terbaca diperlakukan sama dengan token absen.
func (s *Store) Get() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Set menyimpan token, menimpa nilai sebelumnya.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear menghapus token. Token yang sudah tidak ada bukan error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
