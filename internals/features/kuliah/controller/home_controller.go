package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/kuliah/model"
	"kampusku_mobile/internals/features/kuliah/service"
	usermodel "kampusku_mobile/internals/features/user/model"
	userservice "kampusku_mobile/internals/features/user/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
	"kampusku_mobile/internals/ui"
)

type profilResult struct {
	seq  int
	user *usermodel.User
	res  api.Result
}

type matkulResult struct {
	seq    int
	matkul []model.Matakuliah
	res    api.Result
}

// HomeController menampilkan salam + grid matakuliah. Profil dan daftar
// matakuliah di-fetch bersamaan tapi independen; keduanya tidak saling
// menunggu dan masing-masing mengisi state-nya sendiri.
type HomeController struct {
	client   *api.Client
	sessions *session.Store

	user          *usermodel.User
	matkul        []model.Matakuliah
	loadingUser   bool
	loadingMatkul bool
	cursor        int
	alert         string
	spin          spinner.Model

	// seq menandai request aktif; respons dengan seq lama diabaikan
	// (layar bisa sudah pindah saat respons datang).
	seq int
}

func NewHome(client *api.Client, sessions *session.Store) *HomeController {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &HomeController{client: client, sessions: sessions, spin: sp}
}

func (m *HomeController) Title() string { return "Home" }

func (m *HomeController) Init() tea.Cmd {
	// Tanpa token langsung ke login, tanpa request apa pun.
	if m.sessions.Get() == "" {
		return nav.SessionExpired()
	}
	return m.refetch()
}

func (m *HomeController) refetch() tea.Cmd {
	m.seq++
	m.loadingUser = true
	m.loadingMatkul = true
	seq := m.seq
	client := m.client
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			p, res := userservice.DataPengguna(context.Background(), client)
			return profilResult{seq: seq, user: p.User, res: res}
		},
		func() tea.Msg {
			matkul, res := service.MatakuliahSaya(context.Background(), client)
			return matkulResult{seq: seq, matkul: matkul, res: res}
		},
	)
}

func (m *HomeController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.FocusMsg:
		return m, m.refetch()

	case profilResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loadingUser = false
		if msg.res.Transport {
			m.alert = msg.res.Message
			return m, nil
		}
		if !msg.res.OK {
			// Fetch profil dipakai sebagai probe sesi: gagal berarti
			// token tidak valid, kembali ke login.
			return m, nav.SessionExpired()
		}
		m.user = msg.user
		return m, nil

	case matkulResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loadingMatkul = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Gagal mengambil data matakuliah")
			return m, nil
		}
		m.matkul = msg.matkul
		if m.cursor >= len(m.matkul) {
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
			if m.cursor < len(m.matkul)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.matkul) {
				mk := m.matkul[m.cursor]
				return m, nav.Push(NewMatakuliah(m.client, mk))
			}
		}
	}
	return m, nil
}

func (m *HomeController) View() string {
	var b strings.Builder

	name := ""
	if m.user != nil {
		name = m.user.Name
	}
	b.WriteString(ui.Header.Render("Selamat Datang 👋 "+name) + "\n\n")

	switch {
	case m.loadingMatkul:
		b.WriteString(m.spin.View() + " Loading...\n")
	case len(m.matkul) == 0:
		b.WriteString(ui.Subtle.Render("Belum ada matakuliah") + "\n")
	default:
		for i, mk := range m.matkul {
			cursor := "  "
			if i == m.cursor {
				cursor = ui.Cursor.Render("> ")
			}
			b.WriteString(cursor + ui.Badge.Render(mk.KodeMatakuliah) + " " + mk.NamaMatakuliah + "\n")
			b.WriteString(ui.CardLine.Render(ui.Subtle.Render("Lihat Modul & Tugas")) + "\n")
		}
	}

	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("↑/↓ pilih · enter buka"))
	return b.String()
}
