package controller

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	tugascontroller "kampusku_mobile/internals/features/tugas/controller"
	"kampusku_mobile/internals/features/tugas/model"
	"kampusku_mobile/internals/features/tugas/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

type tugasResult struct {
	seq   int
	tugas []model.Tugas
	res   api.Result
}

// TugasListController menampilkan daftar tugas satu matakuliah.
// Status terlambat dihitung sekali saat data diterima.
type TugasListController struct {
	client         *api.Client
	kodeMatakuliah string

	tugas     []model.Tugas
	fetchedAt time.Time
	loading   bool
	cursor    int
	alert     string
	spin      spinner.Model
	seq       int
}

func NewTugasList(client *api.Client, kodeMatakuliah string) *TugasListController {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &TugasListController{client: client, kodeMatakuliah: kodeMatakuliah, spin: sp}
}

func (m *TugasListController) Title() string { return "Tugas" }

func (m *TugasListController) Init() tea.Cmd {
	return m.refetch()
}

func (m *TugasListController) refetch() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	client := m.client
	kode := m.kodeMatakuliah
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		tugas, res := service.TugasData(context.Background(), client, kode)
		return tugasResult{seq: seq, tugas: tugas, res: res}
	})
}

func (m *TugasListController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.FocusMsg:
		return m, m.refetch()

	case tugasResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Gagal mengambil data tugas")
			return m, nil
		}
		m.tugas = msg.tugas
		m.fetchedAt = time.Now()
		if m.cursor >= len(m.tugas) {
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
			if m.cursor < len(m.tugas)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.tugas) {
				return m, nav.Push(tugascontroller.NewUpload(m.client, m.tugas[m.cursor].KodeTugas))
			}
		case "o":
			if m.cursor < len(m.tugas) && m.tugas[m.cursor].FileTugasURL != "" {
				return m, nav.OpenURL(m.tugas[m.cursor].FileTugasURL)
			}
		}
	}
	return m, nil
}

func (m *TugasListController) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " Loading...\n")
	case len(m.tugas) == 0:
		b.WriteString(ui.Subtle.Render("Belum ada tugas") + "\n")
	default:
		b.WriteString(tugascontroller.RenderTugasRows(m.tugas, m.cursor, m.fetchedAt, false))
	}

	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("enter kumpulkan · o lihat soal"))
	return b.String()
}
