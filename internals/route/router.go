package route

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kampusku_mobile/internals/api"
	authcontroller "kampusku_mobile/internals/features/auth/controller"
	kuliahcontroller "kampusku_mobile/internals/features/kuliah/controller"
	tugascontroller "kampusku_mobile/internals/features/tugas/controller"
	usercontroller "kampusku_mobile/internals/features/user/controller"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/session"
	"kampusku_mobile/internals/ui"
)

const (
	tabHome = iota
	tabTugas
	tabUser
	tabCount
)

var tabLabels = [tabCount]string{"Home", "Tugas", "User"}

// Router adalah shell navigasi: gerbang login, tiga tab dengan stack
// masing-masing, dan penyiaran FocusMsg ke layar yang kembali terlihat.
// Pesan hanya diteruskan ke layar paling atas pada stack aktif, sehingga
// respons telat milik layar yang sudah ditinggalkan otomatis gugur.
type Router struct {
	sessions *session.Store
	client   *api.Client

	loggedIn bool
	login    nav.Screen
	stacks   [tabCount][]nav.Screen
	active   int
	toast    string
}

func New(sessions *session.Store, client *api.Client) *Router {
	r := &Router{sessions: sessions, client: client}
	// Seperti aplikasi aslinya: mulai di shell tab, layar yang butuh
	// token akan mengarahkan ke login sendiri bila token absen.
	r.loggedIn = true
	r.resetTabs()
	return r
}

func (r *Router) resetTabs() {
	r.stacks[tabHome] = []nav.Screen{kuliahcontroller.NewHome(r.client, r.sessions)}
	r.stacks[tabTugas] = []nav.Screen{tugascontroller.NewTodo(r.client)}
	r.stacks[tabUser] = []nav.Screen{usercontroller.NewProfile(r.client, r.sessions)}
	r.active = tabHome
}

func (r *Router) top() nav.Screen {
	stack := r.stacks[r.active]
	return stack[len(stack)-1]
}

func (r *Router) setTop(s nav.Screen) {
	stack := r.stacks[r.active]
	stack[len(stack)-1] = s
}

func (r *Router) Init() tea.Cmd {
	if !r.loggedIn {
		return r.login.Init()
	}
	return r.top().Init()
}

func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

	case nav.ToastMsg:
		r.toast = msg.Text
		return r, nil

	case nav.LoggedInMsg:
		r.loggedIn = true
		r.login = nil
		r.toast = ""
		r.resetTabs()
		return r, r.top().Init()

	case nav.SessionExpiredMsg, nav.LogoutMsg:
		_ = r.sessions.Clear()
		r.loggedIn = false
		r.toast = ""
		r.login = authcontroller.NewLogin(r.client, r.sessions)
		return r, r.login.Init()

	case nav.PushMsg:
		r.toast = ""
		r.stacks[r.active] = append(r.stacks[r.active], msg.Screen)
		return r, msg.Screen.Init()

	case nav.BackMsg:
		stack := r.stacks[r.active]
		if len(stack) > 1 {
			r.stacks[r.active] = stack[:len(stack)-1]
		}
		// Layar di bawahnya kembali terlihat; fetch ulang datanya.
		return r.forward(nav.FocusMsg{})
	}

	if !r.loggedIn {
		updated, cmd := r.login.Update(msg)
		r.login = updated.(nav.Screen)
		return r, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			// Ganti tab hanya dari akar stack; di layar dalam, tab
			// bisa jadi bagian input form.
			if len(r.stacks[r.active]) == 1 {
				r.toast = ""
				r.active = (r.active + 1) % tabCount
				return r.forward(nav.FocusMsg{})
			}
		case "esc":
			if len(r.stacks[r.active]) > 1 {
				return r.Update(nav.BackMsg{})
			}
		}
	}

	return r.forward(msg)
}

func (r *Router) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := r.top()
	updated, cmd := top.Update(msg)
	r.setTop(updated.(nav.Screen))
	return r, cmd
}

func (r *Router) View() string {
	if !r.loggedIn {
		return r.login.View()
	}

	var b strings.Builder
	var row []string
	for i, label := range tabLabels {
		if i == r.active {
			row = append(row, ui.TabOn.Render(label))
		} else {
			row = append(row, ui.TabOff.Render(label))
		}
	}
	b.WriteString(strings.Join(row, " "))
	if len(r.stacks[r.active]) > 1 {
		b.WriteString(ui.Help.Render("  › " + r.top().Title() + " (esc kembali)"))
	}
	b.WriteString("\n\n")
	b.WriteString(r.top().View())
	if r.toast != "" {
		b.WriteString("\n\n" + ui.Badge.Render(r.toast))
	}
	b.WriteString("\n" + ui.Help.Render("tab ganti menu · ctrl+c keluar aplikasi"))
	return b.String()
}
