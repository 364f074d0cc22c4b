// Package ui memusatkan gaya lipgloss yang dipakai lintas layar.
// Warna mengikuti palet aplikasi mobile (#6C9EE5 biru, chip hijau/merah).
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("111")).
		Padding(0, 2)

	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Err    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	Nilai  = lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true)

	ChipSelesai = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("151")).
			Padding(0, 1)
	ChipBelum = lipgloss.NewStyle().
			Foreground(lipgloss.Color("88")).
			Background(lipgloss.Color("217")).
			Padding(0, 1)

	Cursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	Badge    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("111")).Padding(0, 1)
	Help     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	TabOn    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")).Underline(true).Padding(0, 1)
	TabOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	CardLine = lipgloss.NewStyle().PaddingLeft(2)
)

// Chip merender status pengumpulan tugas.
func Chip(sudahKumpul bool) string {
	if sudahKumpul {
		return ChipSelesai.Render("Selesai")
	}
	return ChipBelum.Render("Belum")
}

// Alert merender satu baris pesan error/peringatan layar.
func Alert(text string) string {
	if text == "" {
		return ""
	}
	return Err.Render("⚠ " + text)
}
