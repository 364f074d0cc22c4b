package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/auth/dto"
	"kampusku_mobile/internals/features/auth/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
	"kampusku_mobile/internals/ui"
)

var validate = validator.New()

type loginResult struct {
	token string
	res   api.Result
}

// LoginController adalah layar masuk. Sukses login menyimpan token lalu
// memberi tahu router; gagal menampilkan pesan server dan tetap di sini.
type LoginController struct {
	client   *api.Client
	sessions *session.Store

	email    textinput.Model
	password textinput.Model
	focus    int
	loading  bool
	alert    string
	spin     spinner.Model
}

func NewLogin(client *api.Client, sessions *session.Store) *LoginController {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &LoginController{
		client:   client,
		sessions: sessions,
		email:    email,
		password: password,
		spin:     sp,
	}
}

func (m *LoginController) Title() string { return "Login" }

func (m *LoginController) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % 2)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + 1) % 2)
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.setFocus(1)
				return m, nil
			}
			return m, m.submit()
		}

	case loginResult:
		m.loading = false
		if !msg.res.OK {
			m.alert = msg.res.MessageOr("Invalid credentials")
			return m, nil
		}
		if err := m.sessions.Set(msg.token); err != nil {
			m.alert = "Gagal menyimpan sesi"
			return m, nil
		}
		return m, nav.LoggedIn()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginController) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

func (m *LoginController) submit() tea.Cmd {
	req := dto.LoginRequest{
		Email:    strings.TrimSpace(m.email.Value()),
		Password: m.password.Value(),
	}
	if err := validate.Struct(req); err != nil {
		m.alert = "Masukkan email & password yang valid"
		return nil
	}

	m.alert = ""
	m.loading = true
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		token, res := service.Login(context.Background(), client, req)
		return loginResult{token: token, res: res}
	})
}

func (m *LoginController) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("Selamat Datang!") + "\n")
	b.WriteString(ui.Subtle.Render("Masukkan email & password") + "\n\n")
	b.WriteString(m.email.View() + "\n")
	b.WriteString(m.password.View() + "\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + " Loading...\n")
	} else {
		b.WriteString(ui.Badge.Render("LOGIN") + ui.Help.Render("  enter untuk masuk") + "\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Subtle.Render("Belum punya akun? Silahkan kunjungi situs web."))
	return b.String()
}
