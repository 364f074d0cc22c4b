package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetAbsentToken(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "token"))
	if got := s.Get(); got != "" {
		t.Fatalf("token absen harus kosong, dapat %q", got)
	}
}

func TestSetGetClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "token")
	s := New(path)

	if err := s.Set("T1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(); got != "T1" {
		t.Fatalf("Get = %q, ingin T1", got)
	}

	// Login baru menimpa token lama.
	if err := s.Set("T2"); err != nil {
		t.Fatalf("Set ulang: %v", err)
	}
	if got := s.Get(); got != "T2" {
		t.Fatalf("Get = %q, ingin T2", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := s.Get(); got != "" {
		t.Fatalf("setelah Clear token harus kosong, dapat %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file token harus terhapus")
	}
}

func TestClearTwice(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "token"))
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear tanpa token harus sukses: %v", err)
	}
}
