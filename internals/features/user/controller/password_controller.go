package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/user/dto"
	"kampusku_mobile/internals/features/user/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

var validate = validator.New()

type prefillResult struct {
	seq  int
	p    service.Pengguna
	res  api.Result
}

type updateResult struct {
	seq int
	res api.Result
}

// PasswordController adalah form Update Akun: nama + email (prefill dari
// server) dan password baru + konfirmasi.
type PasswordController struct {
	client *api.Client

	inputs  [4]textinput.Model
	focus   int
	loading bool
	alert   string
	spin    spinner.Model
	seq     int
}

func NewPassword(client *api.Client) *PasswordController {
	m := &PasswordController{client: client}

	labels := [4]string{"Name", "Email", "New password", "Confirm password"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 100
		if i >= 2 {
			in.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spin = sp
	return m
}

func (m *PasswordController) Title() string { return "Edit Profile" }

func (m *PasswordController) Init() tea.Cmd {
	m.seq++
	seq := m.seq
	client := m.client
	return tea.Batch(textinput.Blink, func() tea.Msg {
		p, res := service.DataPengguna(context.Background(), client)
		return prefillResult{seq: seq, p: p, res: res}
	})
}

func (m *PasswordController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefillResult:
		if msg.seq != m.seq {
			return m, nil
		}
		if !msg.res.OK {
			if msg.res.Transport {
				m.alert = msg.res.Message
				return m, nil
			}
			return m, nav.SessionExpired()
		}
		if msg.p.User != nil {
			m.inputs[0].SetValue(msg.p.User.Name)
			m.inputs[1].SetValue(msg.p.User.Email)
		}
		return m, nil

	case updateResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Update failed.")
			return m, nil
		}
		return m, tea.Batch(nav.Toast("Data updated successfully!"), nav.Back())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PasswordController) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[i].Focus()
}

func (m *PasswordController) submit() tea.Cmd {
	req := dto.UpdateUserRequest{
		Name:                 strings.TrimSpace(m.inputs[0].Value()),
		Email:                strings.TrimSpace(m.inputs[1].Value()),
		Password:             m.inputs[2].Value(),
		PasswordConfirmation: m.inputs[3].Value(),
	}
	if err := validate.Struct(req); err != nil {
		m.alert = "Periksa kembali isian form (password minimal 6, konfirmasi harus sama)"
		return nil
	}

	m.alert = ""
	m.loading = true
	seq := m.seq
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		res := service.UpdateUser(context.Background(), client, req)
		return updateResult{seq: seq, res: res}
	})
}

func (m *PasswordController) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("Update Akun") + "\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if m.loading {
		b.WriteString("\n" + m.spin.View() + " Menyimpan...\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("enter di field terakhir untuk menyimpan"))
	return b.String()
}
