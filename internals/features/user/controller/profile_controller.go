package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/user/model"
	"kampusku_mobile/internals/features/user/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
	"kampusku_mobile/internals/ui"
)

type penggunaResult struct {
	seq int
	p   service.Pengguna
	res api.Result
}

// ProfileController menampilkan profil akun + data mahasiswa.
// Fetch profil sekaligus menjadi probe sesi.
type ProfileController struct {
	client   *api.Client
	sessions *session.Store

	user       *model.User
	mahasiswa  *model.Mahasiswa
	loading    bool
	confirming bool
	alert      string
	spin       spinner.Model
	seq        int
}

func NewProfile(client *api.Client, sessions *session.Store) *ProfileController {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &ProfileController{client: client, sessions: sessions, spin: sp}
}

func (m *ProfileController) Title() string { return "User" }

func (m *ProfileController) Init() tea.Cmd {
	if m.sessions.Get() == "" {
		return nav.SessionExpired()
	}
	return m.refetch()
}

func (m *ProfileController) refetch() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		p, res := service.DataPengguna(context.Background(), client)
		return penggunaResult{seq: seq, p: p, res: res}
	})
}

func (m *ProfileController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nav.FocusMsg:
		return m, m.refetch()

	case penggunaResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.res.Transport {
			m.alert = msg.res.Message
			return m, nil
		}
		if !msg.res.OK {
			return m, nav.SessionExpired()
		}
		m.user = msg.p.User
		m.mahasiswa = msg.p.Mahasiswa
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y", "Y":
				m.confirming = false
				return m, nav.Logout()
			case "n", "N", "esc":
				m.confirming = false
			}
			return m, nil
		}
		switch msg.String() {
		case "p":
			return m, nav.Push(NewPassword(m.client))
		case "f":
			photo := ""
			if m.user != nil {
				photo = m.user.Photo
			}
			return m, nav.Push(NewPhoto(m.client, photo))
		case "l":
			m.confirming = true
		}
	}
	return m, nil
}

func (m *ProfileController) View() string {
	if m.loading && m.user == nil {
		return m.spin.View() + " Loading..."
	}

	var b strings.Builder
	if m.user != nil {
		b.WriteString(ui.Title.Render(m.user.Name) + "\n")
		b.WriteString(ui.Subtle.Render(m.user.Email) + "\n\n")
		b.WriteString(infoRow("Nama", m.user.Name))
		b.WriteString(infoRow("Email", m.user.Email))
	}
	if m.mahasiswa != nil {
		b.WriteString(infoRow("Prodi", m.mahasiswa.Prodi))
		b.WriteString(infoRow("Angkatan", m.mahasiswa.Angkatan))
		b.WriteString(infoRow("Status", m.mahasiswa.Status))
	}
	if m.user != nil {
		b.WriteString(infoRow("Akun Dibuat", m.user.CreatedAt.Format("2006-01-02")))
		b.WriteString(infoRow("Akun Diperbarui", m.user.UpdatedAt.Format("2006-01-02")))
	}

	if m.confirming {
		b.WriteString("\n" + ui.Err.Render("Yakin keluar? (y/n)") + "\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("p ganti password · f ganti foto · l keluar"))
	return b.String()
}

func infoRow(label, value string) string {
	return ui.Subtle.Render(padRight(label, 16)) + value + "\n"
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
