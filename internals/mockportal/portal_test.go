package mockportal

import (
	"context"
	"image/color"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/session"
)

func newPortalFixture(t *testing.T) (*Portal, *api.Client) {
	t.Helper()

	portal := New()
	if err := portal.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { _ = portal.Shutdown() })

	sessions := session.New(filepath.Join(t.TempDir(), "token"))
	if err := sessions.Set(portal.IssueToken("a@b.com")); err != nil {
		t.Fatalf("set token: %v", err)
	}
	return portal, api.New(portal.BaseURL(), 5*time.Second, sessions, nil)
}

func TestUpdateUserPasswordMismatch(t *testing.T) {
	_, client := newPortalFixture(t)

	res := client.Do(context.Background(), api.Request{
		Method: "PUT",
		Path:   "/update-user",
		JSONBody: map[string]string{
			"name":                  "Budi",
			"password":              "rahasia1",
			"password_confirmation": "rahasia2",
		},
		RequireAuth: true,
	})
	if res.OK || res.Status != 400 {
		t.Fatalf("konfirmasi beda harus 400, dapat %d", res.Status)
	}
	if res.Message != "Konfirmasi password tidak cocok" {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestUpdateUserChangesName(t *testing.T) {
	_, client := newPortalFixture(t)

	res := client.Do(context.Background(), api.Request{
		Method:      "PUT",
		Path:        "/update-user",
		JSONBody:    map[string]string{"name": "Budi Santoso"},
		RequireAuth: true,
	})
	if !res.OK {
		t.Fatalf("update nama harus sukses: %q", res.Message)
	}

	res = client.Do(context.Background(), api.Request{
		Method:      "GET",
		Path:        "/data-pengguna",
		RequireAuth: true,
	})
	var body struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := res.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Name != "Budi Santoso" {
		t.Fatalf("nama = %q", body.User.Name)
	}
}

func TestUpdatePhotoGeneratesThumbnail(t *testing.T) {
	_, client := newPortalFixture(t)

	img := imaging.New(400, 400, color.NRGBA{R: 120, G: 160, B: 220, A: 255})
	path := filepath.Join(t.TempDir(), "foto.jpg")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("simpan gambar: %v", err)
	}

	res := client.Do(context.Background(), api.Request{
		Method: "POST",
		Path:   "/update-photo",
		Form: []api.FormField{
			{Name: "photo", FilePath: path, FileName: "foto.jpg", MIMEType: "image/jpeg"},
		},
		RequireAuth: true,
	})
	if !res.OK {
		t.Fatalf("upload foto harus sukses: status=%d message=%q", res.Status, res.Message)
	}

	var body struct {
		Photo      string `json:"photo"`
		PhotoThumb string `json:"photo_thumb"`
	}
	if err := res.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Photo == "" || body.PhotoThumb == "" {
		t.Fatalf("path foto/thumbnail kosong: %+v", body)
	}

	// File hasil upload harus bisa diambil lagi lewat /storage.
	serve, err := http.Get(client.BaseURL + body.PhotoThumb)
	if err != nil {
		t.Fatalf("ambil thumbnail: %v", err)
	}
	defer serve.Body.Close()
	if serve.StatusCode != http.StatusOK {
		t.Fatalf("thumbnail tidak tersaji: status=%d", serve.StatusCode)
	}
	if ct := serve.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestUpdatePhotoRejectsNonImage(t *testing.T) {
	_, client := newPortalFixture(t)

	path := filepath.Join(t.TempDir(), "bukan.jpg")
	if err := os.WriteFile(path, []byte("bukan gambar"), 0o600); err != nil {
		t.Fatalf("tulis file: %v", err)
	}

	res := client.Do(context.Background(), api.Request{
		Method: "POST",
		Path:   "/update-photo",
		Form: []api.FormField{
			{Name: "photo", FilePath: path, FileName: "bukan.jpg", MIMEType: "image/jpeg"},
		},
		RequireAuth: true,
	})
	if res.OK || res.Status != 400 {
		t.Fatalf("file non-gambar harus 400, dapat %d", res.Status)
	}
	if res.Message != "File harus berupa gambar" {
		t.Fatalf("message = %q", res.Message)
	}
}

func TestUploadAfterDeadlineRejected(t *testing.T) {
	portal, client := newPortalFixture(t)

	res := client.Do(context.Background(), api.Request{
		Method: "POST",
		Path:   "/tugas/upload",
		Form: []api.FormField{
			{Name: "tugas_kode", Value: "T-002"},
			{Name: "jawaban_text", Value: "telat"},
		},
		RequireAuth: true,
	})
	if res.OK || res.Status != 400 {
		t.Fatalf("upload lewat deadline harus 400, dapat %d", res.Status)
	}
	if res.Message != "Deadline sudah berakhir" {
		t.Fatalf("message = %q", res.Message)
	}
	if portal.Submitted("a@b.com", "T-002") {
		t.Fatalf("tugas tidak boleh tertandai terkumpul")
	}
}

func TestTodoExcludesSubmitted(t *testing.T) {
	portal, client := newPortalFixture(t)

	res := client.Do(context.Background(), api.Request{
		Method: "POST",
		Path:   "/tugas/upload",
		Form: []api.FormField{
			{Name: "tugas_kode", Value: "T-001"},
			{Name: "jawaban_text", Value: "jawaban"},
		},
		RequireAuth: true,
	})
	if !res.OK {
		t.Fatalf("upload harus sukses: %q", res.Message)
	}
	if !portal.Submitted("a@b.com", "T-001") {
		t.Fatalf("T-001 harus tertandai terkumpul")
	}

	res = client.Do(context.Background(), api.Request{
		Method:      "GET",
		Path:        "/tugas/todo",
		RequireAuth: true,
	})
	var body struct {
		Data []struct {
			KodeTugas string `json:"kode_tugas"`
		} `json:"data"`
	}
	if err := res.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, item := range body.Data {
		if item.KodeTugas == "T-001" {
			t.Fatalf("T-001 sudah dikumpulkan, tidak boleh muncul di todo")
		}
	}
}
