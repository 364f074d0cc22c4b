package mockportal

import (
	"bytes"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	tugasmodel "kampusku_mobile/internals/features/tugas/model"
)

func (p *Portal) account(c *fiber.Ctx) *account {
	email := c.Locals("email").(string)
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.accounts[email]
}

func (p *Portal) dataPengguna(c *fiber.Ctx) error {
	acc := p.account(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":      acc.user,
		"mahasiswa": acc.mahasiswa,
	})
}

func (p *Portal) matakuliahSaya(c *fiber.Ctx) error {
	p.mu.Lock()
	matkul := p.matkul
	p.mu.Unlock()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"matkul": matkul,
	})
}

func (p *Portal) modulData(c *fiber.Ctx) error {
	kode := c.Query("kode_matakuliah")
	if kode == "" {
		return Error(c, fiber.StatusBadRequest, "kode_matakuliah wajib diisi")
	}
	p.mu.Lock()
	moduls := p.moduls[kode]
	p.mu.Unlock()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": moduls,
	})
}

// tugasForUser menyalin tugas dasar dan mengisi status per user.
func (p *Portal) tugasForUser(acc *account, kodeMatakuliah, namaMatakuliah string) []tugasmodel.Tugas {
	p.mu.Lock()
	defer p.mu.Unlock()
	base := p.tugas[kodeMatakuliah]
	out := make([]tugasmodel.Tugas, 0, len(base))
	for _, t := range base {
		t.SudahKumpul = acc.sudah[t.KodeTugas]
		if n, ok := acc.nilai[t.KodeTugas]; ok {
			v := n
			t.Nilai = &v
		}
		t.NamaMatakuliah = namaMatakuliah
		out = append(out, t)
	}
	return out
}

func (p *Portal) tugasData(c *fiber.Ctx) error {
	kode := c.Query("kode_matakuliah")
	if kode == "" {
		return Error(c, fiber.StatusBadRequest, "kode_matakuliah wajib diisi")
	}
	acc := p.account(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": p.tugasForUser(acc, kode, ""),
	})
}

func (p *Portal) tugasTodo(c *fiber.Ctx) error {
	acc := p.account(c)

	p.mu.Lock()
	matkul := p.matkul
	p.mu.Unlock()

	todo := []tugasmodel.Tugas{}
	for _, mk := range matkul {
		for _, t := range p.tugasForUser(acc, mk.KodeMatakuliah, mk.NamaMatakuliah) {
			if !t.SudahKumpul {
				todo = append(todo, t)
			}
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": todo,
	})
}

func (p *Portal) findTugas(kodeTugas string) (tugasmodel.Tugas, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, list := range p.tugas {
		for _, t := range list {
			if t.KodeTugas == kodeTugas {
				return t, true
			}
		}
	}
	return tugasmodel.Tugas{}, false
}

func (p *Portal) tugasDetail(c *fiber.Ctx) error {
	kode := c.Query("kode_tugas")
	t, ok := p.findTugas(kode)
	if !ok {
		return Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}
	acc := p.account(c)
	p.mu.Lock()
	t.SudahKumpul = acc.sudah[t.KodeTugas]
	p.mu.Unlock()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": t,
	})
}

func (p *Portal) tugasUpload(c *fiber.Ctx) error {
	kode := c.FormValue("tugas_kode")
	if kode == "" {
		return Error(c, fiber.StatusBadRequest, "Kode tugas wajib diisi")
	}
	t, ok := p.findTugas(kode)
	if !ok {
		return Error(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
	}
	if time.Now().After(t.Deadline) {
		return Error(c, fiber.StatusBadRequest, "Deadline sudah berakhir")
	}

	jawaban := c.FormValue("jawaban_text")
	var file *fiberFile
	if form, err := c.MultipartForm(); err == nil {
		if fh := firstUploadFile(form, "file"); fh != nil {
			if fh.Size > 50*1024*1024 {
				return Error(c, fiber.StatusBadRequest, "Ukuran file maksimal 50 MB")
			}
			file = &fiberFile{name: fh.Filename, size: fh.Size}
		}
	}
	if jawaban == "" && file == nil {
		return Error(c, fiber.StatusBadRequest, "Jawaban tidak boleh kosong")
	}

	acc := p.account(c)
	p.mu.Lock()
	acc.sudah[kode] = true
	p.mu.Unlock()

	return Success(c, "Jawaban berhasil dikumpulkan", nil)
}

type fiberFile struct {
	name string
	size int64
}

func (p *Portal) updateUser(c *fiber.Ctx) error {
	var req struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if req.Password != req.PasswordConfirmation {
		return Error(c, fiber.StatusBadRequest, "Konfirmasi password tidak cocok")
	}

	acc := p.account(c)
	p.mu.Lock()
	if req.Name != "" {
		acc.user.Name = req.Name
	}
	if req.Email != "" {
		acc.user.Email = req.Email
	}
	acc.user.UpdatedAt = time.Now()
	p.mu.Unlock()

	return Success(c, "Data pengguna berhasil diperbarui", nil)
}

func (p *Portal) updatePhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "Foto wajib diunggah")
	}
	if fh.Size > 5*1024*1024 {
		return Error(c, fiber.StatusBadRequest, "Ukuran gambar maksimal 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "Foto tidak bisa dibaca")
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "File harus berupa gambar")
	}

	// Thumbnail dibuat server-side, seperti pipeline foto backend asli.
	thumb := imaging.Thumbnail(img, 128, 128, imaging.Lanczos)

	var full, small bytes.Buffer
	if err := imaging.Encode(&full, img, imaging.JPEG); err != nil {
		return Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	if err := imaging.Encode(&small, thumb, imaging.JPEG); err != nil {
		return Error(c, fiber.StatusInternalServerError, "Gagal menyimpan thumbnail")
	}

	id := uuid.NewString()
	photoPath := "/storage/photo/" + id + ".jpg"
	thumbPath := "/storage/photo/" + id + "_thumb.jpg"

	acc := p.account(c)
	p.mu.Lock()
	p.photos[photoPath] = full.Bytes()
	p.photos[thumbPath] = small.Bytes()
	acc.user.Photo = photoPath
	acc.user.PhotoThumb = thumbPath
	acc.user.UpdatedAt = time.Now()
	p.mu.Unlock()

	return Success(c, "Foto profil berhasil diperbarui", fiber.Map{
		"photo":       photoPath,
		"photo_thumb": thumbPath,
	})
}

func (p *Portal) serveStorage(c *fiber.Ctx) error {
	path := "/storage/" + c.Params("*")
	p.mu.Lock()
	data, ok := p.photos[path]
	p.mu.Unlock()
	if !ok {
		return Error(c, fiber.StatusNotFound, "File tidak ditemukan")
	}
	c.Set("Content-Type", "image/jpeg")
	return c.Send(data)
}
