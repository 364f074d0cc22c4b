package controller

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/tugas/model"
	"kampusku_mobile/internals/features/tugas/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

type todoResult struct {
	seq   int
	tugas []model.Tugas
	res   api.Result
}

// TodoController menampilkan semua tugas yang belum dikumpulkan,
// lintas matakuliah.
type TodoController struct {
	client *api.Client

	tugas     []model.Tugas
	fetchedAt time.Time
	loading   bool
	cursor    int
	alert     string
	spin      spinner.Model
	seq       int
}

func NewTodo(client *api.Client) *TodoController {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &TodoController{client: client, spin: sp}
}

func (m *TodoController) Title() string { return "Tugas Saya" }

func (m *TodoController) Init() tea.Cmd {
	return m.refetch()
}

func (m *TodoController) refetch() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		tugas, res := service.TugasTodo(context.Background(), client)
		return todoResult{seq: seq, tugas: tugas, res: res}
	})
}

func (m *TodoController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.FocusMsg:
		return m, m.refetch()

	case todoResult:
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
				return m, nav.Push(NewUpload(m.client, m.tugas[m.cursor].KodeTugas))
			}
		case "o":
			if m.cursor < len(m.tugas) && m.tugas[m.cursor].FileTugasURL != "" {
				return m, nav.OpenURL(m.tugas[m.cursor].FileTugasURL)
			}
		}
	}
	return m, nil
}

func (m *TodoController) View() string {
	var b strings.Builder
	b.WriteString(ui.Header.Render("📘 Tugas Saya") + "\n")
	b.WriteString(ui.Subtle.Render("Daftar tugas yang belum dikumpulkan") + "\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View() + " Loading...\n")
	case len(m.tugas) == 0:
		b.WriteString(ui.Subtle.Render("Tidak ada tugas 🎉") + "\n")
	default:
		b.WriteString(RenderTugasRows(m.tugas, m.cursor, m.fetchedAt, true))
	}

	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("enter kumpulkan · o lihat soal"))
	return b.String()
}
