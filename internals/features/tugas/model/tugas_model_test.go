package model

import (
	"testing"
	"time"
)

func TestExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	past := Tugas{Deadline: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
	if !past.Expired(now) {
		t.Fatalf("deadline tahun 2000 harus terlambat")
	}

	future := Tugas{Deadline: now.Add(24 * time.Hour)}
	if future.Expired(now) {
		t.Fatalf("deadline besok belum terlambat")
	}

	exact := Tugas{Deadline: now}
	if exact.Expired(now) {
		t.Fatalf("tepat di deadline masih boleh")
	}
}

func TestStatusLabel(t *testing.T) {
	belum := Tugas{
		Deadline:    time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		SudahKumpul: false,
	}
	if got := belum.StatusLabel(); got != "Belum" {
		t.Fatalf("StatusLabel = %q, ingin Belum", got)
	}

	sudah := Tugas{SudahKumpul: true}
	if got := sudah.StatusLabel(); got != "Selesai" {
		t.Fatalf("StatusLabel = %q, ingin Selesai", got)
	}
}

func TestNilaiLabel(t *testing.T) {
	kosong := Tugas{}
	if got := kosong.NilaiLabel(); got != "" {
		t.Fatalf("tanpa nilai label harus kosong, dapat %q", got)
	}

	n := 85.0
	dinilai := Tugas{Nilai: &n}
	if got := dinilai.NilaiLabel(); got == "" {
		t.Fatalf("nilai 85 harus punya label")
	}
}

func TestFormatTanggal(t *testing.T) {
	d := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatTanggal(d); got != "01 Januari 2000" {
		t.Fatalf("FormatTanggal = %q", got)
	}
	if got := FormatTanggalJam(d); got != "01 Januari 2000, 00:00 WIB" {
		t.Fatalf("FormatTanggalJam = %q", got)
	}
}
