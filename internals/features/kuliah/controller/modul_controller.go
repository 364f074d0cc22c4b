package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/kuliah/model"
	"kampusku_mobile/internals/features/kuliah/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

type modulResult struct {
	seq     int
	modules []model.Modul
	res     api.Result
}

// ModulController menampilkan daftar modul satu matakuliah.
// Modul dibuka lewat handler URL eksternal.
type ModulController struct {
	client         *api.Client
	kodeMatakuliah string

	modules []model.Modul
	loading bool
	cursor  int
	alert   string
	spin    spinner.Model
	seq     int
}

func NewModul(client *api.Client, kodeMatakuliah string) *ModulController {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &ModulController{client: client, kodeMatakuliah: kodeMatakuliah, spin: sp}
}

func (m *ModulController) Title() string { return "Module" }

func (m *ModulController) Init() tea.Cmd {
	return m.refetch()
}

func (m *ModulController) refetch() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	client := m.client
	kode := m.kodeMatakuliah
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		modules, res := service.ModulData(context.Background(), client, kode)
		return modulResult{seq: seq, modules: modules, res: res}
	})
}

func (m *ModulController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.FocusMsg:
		return m, m.refetch()

	case modulResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Gagal mengambil data modul")
			return m, nil
		}
		m.modules = msg.modules
		if m.cursor >= len(m.modules) {
			m.cursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.modules)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.modules) {
				return m, nav.OpenURL(m.modules[m.cursor].FileURL)
			}
		}
	}
	return m, nil
}

func (m *ModulController) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " Loading...\n")
	case len(m.modules) == 0:
		b.WriteString(ui.Subtle.Render("Belum ada modul") + "\n")
	default:
		for i, md := range m.modules {
			cursor := "  "
			if i == m.cursor {
				cursor = ui.Cursor.Render("> ")
			}
			b.WriteString(cursor + "📄 " + md.Judul + "\n")
			b.WriteString(ui.CardLine.Render(ui.Subtle.Render("Upload: "+md.CreatedAt.Format("02/01/2006"))) + "\n")
		}
	}

	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("enter lihat file"))
	return b.String()
}
