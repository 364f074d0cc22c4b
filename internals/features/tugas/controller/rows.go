package controller

import (
	"strings"
	"time"

	"kampusku_mobile/internals/features/tugas/model"
	"kampusku_mobile/internals/ui"
)

// RenderTugasRows merender baris daftar tugas; dipakai layar todo dan
// daftar tugas per matakuliah. Penanda terlambat memakai waktu fetch,
// bukan waktu render.
func RenderTugasRows(tugas []model.Tugas, cursor int, fetchedAt time.Time, withMatkul bool) string {
	var b strings.Builder
	for i, t := range tugas {
		mark := "  "
		if i == cursor {
			mark = ui.Cursor.Render("> ")
		}
		b.WriteString(mark + "📋 " + t.Judul + " " + ui.Chip(t.SudahKumpul) + "\n")
		if withMatkul && t.NamaMatakuliah != "" {
			b.WriteString(ui.CardLine.Render(ui.Subtle.Render(t.NamaMatakuliah)) + "\n")
		}
		deadline := "Deadline: " + model.FormatTanggal(t.Deadline)
		if !t.SudahKumpul && t.Expired(fetchedAt) {
			deadline += " " + ui.Err.Render("⛔ Terlambat")
		}
		b.WriteString(ui.CardLine.Render(ui.Subtle.Render(deadline)) + "\n")
		if t.Nilai != nil {
			b.WriteString(ui.CardLine.Render(ui.Nilai.Render(t.NilaiLabel())) + "\n")
		}
	}
	return b.String()
}
