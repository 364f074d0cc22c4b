package controller

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/kuliah/model"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

// MatakuliahController adalah layar detail matakuliah dengan dua tab atas:
// Modul dan Tugas. Pindah tab memfokuskan ulang anak yang terlihat.
type MatakuliahController struct {
	matkul model.Matakuliah
	active int
	modul  *ModulController
	tugas  *TugasListController
}

func NewMatakuliah(client *api.Client, mk model.Matakuliah) *MatakuliahController {
	return &MatakuliahController{
		matkul: mk,
		modul:  NewModul(client, mk.KodeMatakuliah),
		tugas:  NewTugasList(client, mk.KodeMatakuliah),
	}
}

func (m *MatakuliahController) Title() string { return m.matkul.NamaMatakuliah }

func (m *MatakuliahController) Init() tea.Cmd {
	return tea.Batch(m.modul.Init(), m.tugas.Init())
}

func (m *MatakuliahController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right":
			m.active = 1 - m.active
			// Tab yang baru terlihat fetch ulang, sama seperti focus effect.
			if m.active == 0 {
				return m, m.forwardModul(nav.FocusMsg{})
			}
			return m, m.forwardTugas(nav.FocusMsg{})
		}
		// Input keyboard hanya untuk tab aktif.
		if m.active == 0 {
			return m, m.forwardModul(msg)
		}
		return m, m.forwardTugas(msg)

	case nav.FocusMsg:
		if m.active == 0 {
			return m, m.forwardModul(msg)
		}
		return m, m.forwardTugas(msg)
	}

	// Hasil fetch async harus sampai ke anak walau tab sedang tidak aktif.
	return m, tea.Batch(m.forwardModul(msg), m.forwardTugas(msg))
}

func (m *MatakuliahController) forwardModul(msg tea.Msg) tea.Cmd {
	updated, cmd := m.modul.Update(msg)
	m.modul = updated.(*ModulController)
	return cmd
}

func (m *MatakuliahController) forwardTugas(msg tea.Msg) tea.Cmd {
	updated, cmd := m.tugas.Update(msg)
	m.tugas = updated.(*TugasListController)
	return cmd
}

func (m *MatakuliahController) View() string {
	var b strings.Builder

	tabs := []string{"Module", "Tugas"}
	var row []string
	for i, t := range tabs {
		if i == m.active {
			row = append(row, ui.TabOn.Render(t))
		} else {
			row = append(row, ui.TabOff.Render(t))
		}
	}
	b.WriteString(strings.Join(row, " ") + ui.Help.Render("   ←/→ ganti tab") + "\n\n")

	if m.active == 0 {
		b.WriteString(m.modul.View())
	} else {
		b.WriteString(m.tugas.View())
	}
	return b.String()
}
