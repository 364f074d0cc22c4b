package nav

import tea "github.com/charmbracelet/bubbletea"

// Screen adalah satu layar di dalam shell navigasi.
type Screen interface {
	tea.Model
	Title() string
}

// PushMsg menumpuk layar baru di atas stack tab aktif.
type PushMsg struct{ Screen Screen }

// BackMsg kembali ke layar sebelumnya; layar yang kembali terlihat
// menerima FocusMsg supaya data list di-fetch ulang.
type BackMsg struct{}

// FocusMsg dikirim router ke layar yang baru saja terlihat kembali
// (pindah tab atau pop). Padanan useFocusEffect di navigasi mobile.
type FocusMsg struct{}

// LoggedInMsg dikirim layar login setelah token tersimpan.
type LoggedInMsg struct{}

// SessionExpiredMsg dikirim layar mana pun yang mendeteksi kegagalan
// autentikasi. Router menghapus sesi dan menampilkan login.
// Token absen dan token ditolak server sama-sama berakhir di sini.
type SessionExpiredMsg struct{}

// LogoutMsg dikirim layar profil setelah user mengonfirmasi keluar.
type LogoutMsg struct{}

// ToastMsg menampilkan satu baris status sementara di shell.
type ToastMsg struct{ Text string }

func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

func LoggedIn() tea.Cmd {
	return func() tea.Msg { return LoggedInMsg{} }
}

func SessionExpired() tea.Cmd {
	return func() tea.Msg { return SessionExpiredMsg{} }
}

func Logout() tea.Cmd {
	return func() tea.Msg { return LogoutMsg{} }
}

func Toast(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text} }
}
