package controller

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gabriel-vasile/mimetype"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/configs"
	"kampusku_mobile/internals/features/user/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

type photoResult struct {
	seq int
	res api.Result
}

// PhotoController mengganti foto profil: pilih file gambar, validasi
// ukuran maksimal 5MB, lalu upload multipart.
type PhotoController struct {
	client       *api.Client
	currentPhoto string

	// MaxSize bisa diturunkan di test; default 5MB.
	MaxSize int64

	input     textinput.Model
	file      string
	fileMIME  string
	uploading bool
	alert     string
	spin      spinner.Model
	seq       int
}

func NewPhoto(client *api.Client, currentPhoto string) *PhotoController {
	in := textinput.New()
	in.Placeholder = "Path file foto"
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &PhotoController{
		client:       client,
		currentPhoto: currentPhoto,
		MaxSize:      configs.MaxPhotoSize,
		input:        in,
		spin:         sp,
	}
}

func (m *PhotoController) Title() string { return "Edit Profile" }

func (m *PhotoController) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PhotoController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case photoResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.uploading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Gagal upload foto")
			return m, nil
		}
		return m, tea.Batch(nav.Toast(msg.res.MessageOr("Upload berhasil")), nav.Back())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.uploading {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			m.Pick(strings.TrimSpace(m.input.Value()))
			return m, nil
		case "ctrl+s":
			return m, m.Submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Pick memvalidasi file foto yang dipilih. Gagal validasi tidak
// mengubah pilihan sebelumnya.
func (m *PhotoController) Pick(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		m.alert = "File tidak ditemukan"
		return
	}
	if info.Size() > m.MaxSize {
		m.alert = "Ukuran gambar maksimal 5MB"
		return
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil || !strings.HasPrefix(mt.String(), "image/") {
		m.alert = "File harus berupa gambar"
		return
	}

	m.alert = ""
	m.file = path
	m.fileMIME = mt.String()
}

func (m *PhotoController) Submit() tea.Cmd {
	if m.uploading {
		return nil
	}
	if m.file == "" {
		m.alert = "Pilih gambar terlebih dahulu"
		return nil
	}

	field := api.FormField{
		FilePath: m.file,
		FileName: filepath.Base(m.file),
		MIMEType: m.fileMIME,
	}

	m.alert = ""
	m.uploading = true
	seq := m.seq
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		res := service.UpdatePhoto(context.Background(), client, field)
		return photoResult{seq: seq, res: res}
	})
}

func (m *PhotoController) View() string {
	var b strings.Builder
	b.WriteString(ui.Title.Render("Ganti Foto Profil") + "\n\n")
	if m.currentPhoto != "" {
		b.WriteString(ui.Subtle.Render("Foto saat ini: "+m.currentPhoto) + "\n")
	}
	if m.file != "" {
		b.WriteString(ui.Subtle.Render("Foto baru: "+m.file) + "\n")
	}
	b.WriteString("\n" + m.input.View() + "\n")

	if m.uploading {
		b.WriteString("\n" + m.spin.View() + " Mengupload...\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}
	b.WriteString("\n" + ui.Help.Render("enter pilih file · ctrl+s upload image"))
	return b.String()
}
