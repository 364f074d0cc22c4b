package controller

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/mockportal"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
)

func newLoginFixture(t *testing.T) (*LoginController, *session.Store) {
	t.Helper()

	portal := mockportal.New()
	if err := portal.Start(); err != nil {
		t.Fatalf("start mock portal: %v", err)
	}
	t.Cleanup(func() { _ = portal.Shutdown() })

	sessions := session.New(filepath.Join(t.TempDir(), "token"))
	client := api.New(portal.BaseURL(), 5*time.Second, sessions, nil)
	return NewLogin(client, sessions), sessions
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runLogin(t *testing.T, m *LoginController, email, password string) []tea.Msg {
	t.Helper()

	m.email.SetValue(email)
	m.password.SetValue(password)

	var result tea.Msg
	for _, msg := range collectMsgs(m.submit()) {
		if _, ok := msg.(loginResult); ok {
			result = msg
		}
	}
	if result == nil {
		t.Fatalf("submit tidak menghasilkan loginResult")
	}
	_, cmd := m.Update(result)
	return collectMsgs(cmd)
}

func TestLoginStoresTokenAndNotifiesRouter(t *testing.T) {
	m, sessions := newLoginFixture(t)

	msgs := runLogin(t, m, "a@b.com", "x")

	if sessions.Get() == "" {
		t.Fatalf("token harus tersimpan setelah login sukses")
	}
	loggedIn := false
	for _, msg := range msgs {
		if _, ok := msg.(nav.LoggedInMsg); ok {
			loggedIn = true
		}
	}
	if !loggedIn {
		t.Fatalf("router harus diberi tahu lewat LoggedInMsg")
	}
}

func TestLoginInvalidShowsServerMessage(t *testing.T) {
	m, sessions := newLoginFixture(t)

	runLogin(t, m, "a@b.com", "salah")

	if sessions.Get() != "" {
		t.Fatalf("login gagal tidak boleh menyimpan token")
	}
	if m.alert != "Email atau password salah" {
		t.Fatalf("alert = %q", m.alert)
	}
}

func TestLoginValidationBlocksRequest(t *testing.T) {
	m, _ := newLoginFixture(t)

	m.email.SetValue("bukan-email")
	m.password.SetValue("x")
	if cmd := m.submit(); cmd != nil {
		t.Fatalf("email tidak valid tidak boleh mengirim request")
	}
	if m.alert == "" {
		t.Fatalf("alert validasi harus tampil")
	}

	m.email.SetValue("a@b.com")
	m.password.SetValue("")
	if cmd := m.submit(); cmd != nil {
		t.Fatalf("password kosong tidak boleh mengirim request")
	}
}
