package nav

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenURL membuka URL lewat handler eksternal milik OS.
// File modul/soal tidak pernah diunduh atau dirender oleh aplikasi.
func OpenURL(raw string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", raw)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", raw)
		default:
			cmd = exec.Command("xdg-open", raw)
		}
		if err := cmd.Start(); err != nil {
			return ToastMsg{Text: "File tidak bisa dibuka"}
		}
		return nil
	}
}
