package route

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/mockportal"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
)

func newRouterFixture(t *testing.T, withToken bool) (*Router, *mockportal.Portal, *session.Store) {
	t.Helper()

	portal := mockportal.New()
	if err := portal.Start(); err != nil {
		t.Fatalf("start mock portal: %v", err)
	}
	t.Cleanup(func() { _ = portal.Shutdown() })

	sessions := session.New(filepath.Join(t.TempDir(), "token"))
	if withToken {
		if err := sessions.Set(portal.IssueToken("a@b.com")); err != nil {
			t.Fatalf("set token: %v", err)
		}
	}
	client := api.New(portal.BaseURL(), 5*time.Second, sessions, nil)
	return New(sessions, client), portal, sessions
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

// drain menjalankan cmd dan memompa pesan hasilnya kembali ke router,
// meniru loop bubbletea. Tick spinner dan blink kursor dibuang supaya
// loop selesai.
func drain(t *testing.T, r *Router, cmd tea.Cmd) {
	t.Helper()
	queue := collectMsgs(cmd)
	for i := 0; i < 100 && len(queue) > 0; i++ {
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case spinner.TickMsg, cursor.BlinkMsg:
			continue
		}
		_, next := r.Update(msg)
		queue = append(queue, collectMsgs(next)...)
	}
}

func TestNoTokenRedirectsToLogin(t *testing.T) {
	r, portal, _ := newRouterFixture(t, false)

	drain(t, r, r.Init())

	if r.loggedIn {
		t.Fatalf("tanpa token harus turun ke layar login")
	}
	if !strings.Contains(r.View(), "Selamat Datang!") {
		t.Fatalf("layar login tidak tampil:\n%s", r.View())
	}
	// Tanpa token tidak boleh ada satu pun request ke server.
	if hits := portal.Hits("/data-pengguna"); hits != 0 {
		t.Fatalf("server menerima %d request profil, ingin 0", hits)
	}
}

func TestLoggedInShowsHomeWithName(t *testing.T) {
	r, _, _ := newRouterFixture(t, true)

	drain(t, r, r.Init())

	view := r.View()
	if !strings.Contains(view, "Andi Pratama") {
		t.Fatalf("nama user tidak tampil:\n%s", view)
	}
	if !strings.Contains(view, "Pemrograman Web") {
		t.Fatalf("matakuliah tidak tampil:\n%s", view)
	}
}

func TestLogoutClearsSessionAndShowsLogin(t *testing.T) {
	r, _, sessions := newRouterFixture(t, true)
	drain(t, r, r.Init())

	_, cmd := r.Update(nav.LogoutMsg{})
	drain(t, r, cmd)

	if sessions.Get() != "" {
		t.Fatalf("logout harus menghapus token")
	}
	if r.loggedIn {
		t.Fatalf("logout harus kembali ke login")
	}
}

func TestTabSwitchOnlyAtStackRoot(t *testing.T) {
	r, _, _ := newRouterFixture(t, true)
	drain(t, r, r.Init())

	if r.active != tabHome {
		t.Fatalf("tab awal harus Home")
	}
	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyTab})
	drain(t, r, cmd)
	if r.active != tabTugas {
		t.Fatalf("tab harus pindah ke Tugas, dapat %d", r.active)
	}

	// Di dalam stack (len > 1) tombol tab milik layar, bukan router.
	r.active = tabHome
	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, r, cmd)
	if len(r.stacks[tabHome]) != 2 {
		t.Fatalf("enter harus push layar matakuliah, stack=%d", len(r.stacks[tabHome]))
	}
	r.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r.active != tabHome {
		t.Fatalf("tab di layar dalam tidak boleh ganti menu")
	}
}

func TestEscPopsAndRefetches(t *testing.T) {
	r, portal, _ := newRouterFixture(t, true)
	drain(t, r, r.Init())

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, r, cmd)
	if len(r.stacks[tabHome]) != 2 {
		t.Fatalf("enter harus push layar matakuliah")
	}

	before := portal.Hits("/matakuliah-saya")
	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drain(t, r, cmd)
	if len(r.stacks[tabHome]) != 1 {
		t.Fatalf("esc harus pop kembali ke Home")
	}
	// Layar yang kembali terlihat fetch ulang datanya.
	if portal.Hits("/matakuliah-saya") <= before {
		t.Fatalf("Home harus refetch setelah kembali terlihat")
	}
}

func TestToastClearedOnNavigation(t *testing.T) {
	r, _, _ := newRouterFixture(t, true)
	drain(t, r, r.Init())

	r.Update(nav.ToastMsg{Text: "Jawaban berhasil dikumpulkan"})
	if !strings.Contains(r.View(), "Jawaban berhasil dikumpulkan") {
		t.Fatalf("toast tidak tampil")
	}

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyTab})
	drain(t, r, cmd)
	if strings.Contains(r.View(), "Jawaban berhasil dikumpulkan") {
		t.Fatalf("toast harus hilang setelah ganti menu")
	}
}
