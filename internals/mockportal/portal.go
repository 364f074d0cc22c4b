// Package mockportal adalah implementasi in-memory dari API portal
// akademik, dipakai untuk pengembangan lokal (cmd/portalmock) dan test.
// Kontraknya mengikuti backend portal yang asli: bentuk JSON, pesan
// error, dan aturan upload yang sama.
package mockportal

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	kuliahmodel "kampusku_mobile/internals/features/kuliah/model"
	tugasmodel "kampusku_mobile/internals/features/tugas/model"
	usermodel "kampusku_mobile/internals/features/user/model"
)

type account struct {
	user         usermodel.User
	mahasiswa    usermodel.Mahasiswa
	passwordHash []byte
	sudah        map[string]bool
	nilai        map[string]float64
}

type Portal struct {
	App *fiber.App

	secret []byte
	ln     net.Listener

	mu       sync.Mutex
	accounts map[string]*account
	matkul   []kuliahmodel.Matakuliah
	moduls   map[string][]kuliahmodel.Modul
	tugas    map[string][]tugasmodel.Tugas
	photos   map[string][]byte
	hits     map[string]int
}

func New() *Portal {
	p := &Portal{
		secret:   []byte("portal-mock-secret"),
		accounts: map[string]*account{},
		moduls:   map[string][]kuliahmodel.Modul{},
		tugas:    map[string][]tugasmodel.Tugas{},
		photos:   map[string][]byte{},
		hits:     map[string]int{},
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             60 * 1024 * 1024,
	})

	// Request-ID + timing, seperti observability ringan di backend asli.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		p.mu.Lock()
		p.hits[c.Path()]++
		p.mu.Unlock()

		start := time.Now()
		err := c.Next()
		log.Printf("[MOCK] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Post("/login", p.login)
	app.Get("/storage/*", p.serveStorage)

	auth := app.Group("", p.requireAuth)
	auth.Get("/data-pengguna", p.dataPengguna)
	auth.Get("/matakuliah-saya", p.matakuliahSaya)
	auth.Get("/moduls/data", p.modulData)
	auth.Get("/tugas/data", p.tugasData)
	auth.Get("/tugas/todo", p.tugasTodo)
	auth.Get("/tugas/detail", p.tugasDetail)
	auth.Post("/tugas/upload", p.tugasUpload)
	auth.Put("/update-user", p.updateUser)
	auth.Post("/update-photo", p.updatePhoto)

	p.App = app
	p.seed()
	return p
}

// Start menjalankan server di loopback dengan port acak.
func (p *Portal) Start() error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	p.ln = ln
	go func() {
		if err := p.App.Listener(ln); err != nil {
			log.Printf("[MOCK] server berhenti: %v", err)
		}
	}()
	return nil
}

// Listen menjalankan server di alamat tertentu (untuk cmd/portalmock).
func (p *Portal) Listen(addr string) error {
	return p.App.Listen(addr)
}

func (p *Portal) BaseURL() string {
	return "http://" + p.ln.Addr().String()
}

func (p *Portal) Shutdown() error {
	return p.App.Shutdown()
}

// Hits mengembalikan berapa kali path tertentu diterima server.
func (p *Portal) Hits(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits[path]
}

// Submitted melaporkan apakah user sudah mengumpulkan tugas tertentu.
func (p *Portal) Submitted(email, kodeTugas string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.accounts[email]
	return ok && acc.sudah[kodeTugas]
}

// AddTugas menambah tugas ke satu matakuliah (untuk skenario test).
func (p *Portal) AddTugas(kodeMatakuliah string, t tugasmodel.Tugas) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tugas[kodeMatakuliah] = append(p.tugas[kodeMatakuliah], t)
}

func (p *Portal) seed() {
	now := time.Now()
	p.addAccount("a@b.com", "x", usermodel.User{
		Name:      "Andi Pratama",
		Email:     "a@b.com",
		CreatedAt: now.AddDate(-2, 0, 0),
		UpdatedAt: now.AddDate(0, -1, 0),
	}, usermodel.Mahasiswa{
		Prodi:    "Teknik Informatika",
		Angkatan: "2022",
		Status:   "Aktif",
	})

	p.matkul = []kuliahmodel.Matakuliah{
		{KodeMatakuliah: "CS101", NamaMatakuliah: "Pemrograman Web"},
		{KodeMatakuliah: "CS102", NamaMatakuliah: "Basis Data"},
	}

	p.moduls["CS101"] = []kuliahmodel.Modul{
		{ID: 1, Judul: "Pengantar HTML & CSS", CreatedAt: now.AddDate(0, 0, -14), FileURL: "/storage/modul/html-css.pdf"},
		{ID: 2, Judul: "Dasar JavaScript", CreatedAt: now.AddDate(0, 0, -7), FileURL: "/storage/modul/javascript.pdf"},
	}

	p.tugas["CS101"] = []tugasmodel.Tugas{
		{
			KodeTugas: "T-001",
			Judul:     "Membuat Halaman Profil",
			Deskripsi: "Buat halaman profil sederhana dengan HTML dan CSS.",
			Deadline:  now.AddDate(0, 0, 7),
		},
		{
			KodeTugas:    "T-002",
			Judul:        "Analisis Layout",
			Deskripsi:    "Analisis layout tiga situs web pilihan Anda.",
			Deadline:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			FileTugasURL: "/storage/soal/t-002.pdf",
		},
	}
	p.tugas["CS102"] = []tugasmodel.Tugas{
		{
			KodeTugas: "T-101",
			Judul:     "ERD Perpustakaan",
			Deskripsi: "Rancang ERD untuk sistem perpustakaan kampus.",
			Deadline:  now.AddDate(0, 0, 3),
		},
	}
}
