package controller

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gabriel-vasile/mimetype"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/configs"
	"kampusku_mobile/internals/features/tugas/model"
	"kampusku_mobile/internals/features/tugas/service"
	"kampusku_mobile/internals/nav"
	"kampusku_mobile/internals/ui"
)

type detailResult struct {
	seq   int
	tugas *model.Tugas
	res   api.Result
}

type uploadResult struct {
	seq int
	res api.Result
}

type attachment struct {
	path string
	name string
	mime string
	size int64
}

// UploadController adalah layar detail + pengumpulan tugas.
// Deadline dicek sekali saat detail diterima; lewat deadline mengunci
// seluruh form untuk instance layar ini (tidak dievaluasi ulang live).
type UploadController struct {
	client    *api.Client
	kodeTugas string

	// MaxSize bisa diturunkan di test; default 50MB.
	MaxSize int64

	tugas     *model.Tugas
	loading   bool
	uploading bool
	expired   bool

	jawaban     textarea.Model
	file        *attachment
	attachMode  bool
	attachInput textinput.Model

	alert string
	spin  spinner.Model
	seq   int
}

func NewUpload(client *api.Client, kodeTugas string) *UploadController {
	ta := textarea.New()
	ta.Placeholder = "Ketik jawaban Anda di sini..."
	ta.SetHeight(6)
	ta.Focus()

	in := textinput.New()
	in.Placeholder = "Path file foto/video"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &UploadController{
		client:      client,
		kodeTugas:   kodeTugas,
		MaxSize:     configs.MaxUploadSize,
		jawaban:     ta,
		attachInput: in,
		spin:        sp,
	}
}

func (m *UploadController) Title() string { return "Pengumpulan Tugas" }

func (m *UploadController) Init() tea.Cmd {
	m.seq++
	m.loading = true
	seq := m.seq
	client := m.client
	kode := m.kodeTugas
	return tea.Batch(m.spin.Tick, textarea.Blink, func() tea.Msg {
		tugas, res := service.TugasDetail(context.Background(), client, kode)
		return detailResult{seq: seq, tugas: tugas, res: res}
	})
}

func (m *UploadController) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			m.alert = msg.res.MessageOr("Gagal mengambil detail tugas")
			return m, nil
		}
		m.tugas = msg.tugas
		m.expired = msg.tugas.Expired(time.Now())
		return m, nil

	case uploadResult:
		if msg.seq != m.seq {
			return m, nil
		}
		m.uploading = false
		if !msg.res.OK {
			if msg.res.AuthFailed() {
				return m, nav.SessionExpired()
			}
			// Jawaban dan lampiran dibiarkan utuh supaya bisa dicoba lagi.
			m.alert = msg.res.MessageOr("Upload gagal")
			return m, nil
		}
		return m, tea.Batch(nav.Toast(msg.res.MessageOr("Sukses")), nav.Back())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.uploading {
			return m, nil
		}
		if m.attachMode {
			switch msg.String() {
			case "enter":
				m.attachMode = false
				m.Attach(strings.TrimSpace(m.attachInput.Value()))
				return m, nil
			case "esc":
				m.attachMode = false
				return m, nil
			}
			var cmd tea.Cmd
			m.attachInput, cmd = m.attachInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+f":
			if m.expired {
				return m, nil
			}
			m.attachMode = true
			m.attachInput.SetValue("")
			m.attachInput.Focus()
			return m, textinput.Blink
		case "ctrl+s":
			return m, m.Submit()
		case "ctrl+o":
			if m.tugas != nil && m.tugas.FileTugasURL != "" {
				return m, nav.OpenURL(m.tugas.FileTugasURL)
			}
			return m, nil
		}
		if m.expired {
			return m, nil
		}
		var cmd tea.Cmd
		m.jawaban, cmd = m.jawaban.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.attachMode {
		m.attachInput, cmd = m.attachInput.Update(msg)
	} else {
		m.jawaban, cmd = m.jawaban.Update(msg)
	}
	return m, cmd
}

// Attach memvalidasi dan memasang satu lampiran. Lampiran kedua
// menggantikan yang pertama. Gagal validasi tidak menyentuh state lama.
func (m *UploadController) Attach(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		m.alert = "File tidak ditemukan"
		return
	}
	if info.Size() > m.MaxSize {
		m.alert = "Ukuran file maksimal 50 MB"
		return
	}

	mime := "application/octet-stream"
	if mt, err := mimetype.DetectFile(path); err == nil {
		mime = mt.String()
	}

	m.alert = ""
	m.file = &attachment{
		path: path,
		name: filepath.Base(path),
		mime: mime,
		size: info.Size(),
	}
}

// Submit mengirim jawaban. Kosong total ditolak di sisi klien tanpa
// ada request yang keluar.
func (m *UploadController) Submit() tea.Cmd {
	if m.expired || m.uploading || m.tugas == nil {
		return nil
	}
	jawaban := strings.TrimSpace(m.jawaban.Value())
	if jawaban == "" && m.file == nil {
		m.alert = "Isi jawaban atau pilih media"
		return nil
	}

	payload := service.UploadPayload{
		KodeTugas:   m.kodeTugas,
		JawabanText: jawaban,
	}
	if m.file != nil {
		payload.File = &api.FormField{
			FilePath: m.file.path,
			FileName: m.file.name,
			MIMEType: m.file.mime,
		}
	}

	m.alert = ""
	m.uploading = true
	seq := m.seq
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		res := service.UploadTugas(context.Background(), client, payload)
		return uploadResult{seq: seq, res: res}
	})
}

func (m *UploadController) View() string {
	if m.loading {
		return m.spin.View() + " Loading..."
	}
	if m.tugas == nil {
		return ui.Alert(m.alert)
	}

	var b strings.Builder
	b.WriteString(ui.Title.Render(m.tugas.Judul) + "\n")
	b.WriteString(m.tugas.Deskripsi + "\n")
	b.WriteString(ui.Subtle.Render("Deadline: "+model.FormatTanggalJam(m.tugas.Deadline)) + "\n")
	if m.expired {
		b.WriteString(ui.Err.Render("⛔ Deadline berakhir") + "\n")
	}
	b.WriteString("\n" + m.jawaban.View() + "\n")

	if m.file != nil {
		b.WriteString("\n" + ui.Subtle.Render("Media: "+m.file.name+" ("+m.file.mime+")") + "\n")
	}
	if m.attachMode {
		b.WriteString("\n" + m.attachInput.View() + "\n")
	}

	if m.uploading {
		b.WriteString("\n" + m.spin.View() + " Mengupload...\n")
	}
	if m.alert != "" {
		b.WriteString("\n" + ui.Alert(m.alert) + "\n")
	}

	help := "ctrl+f pilih foto/video (opsional) · ctrl+s kirim jawaban"
	if m.tugas.FileTugasURL != "" {
		help += " · ctrl+o lihat soal"
	}
	b.WriteString("\n" + ui.Help.Render(help))
	return b.String()
}
