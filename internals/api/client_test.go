package api

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kampusku_mobile/internals/features/auth/dto"
	"kampusku_mobile/internals/mockportal"
	"kampusku_mobile/internals/session"
)

func newTestClient(t *testing.T) (*Client, *mockportal.Portal, *session.Store) {
	t.Helper()

	portal := mockportal.New()
	if err := portal.Start(); err != nil {
		t.Fatalf("start mock portal: %v", err)
	}
	t.Cleanup(func() { _ = portal.Shutdown() })

	sessions := session.New(filepath.Join(t.TempDir(), "token"))
	client := New(portal.BaseURL(), 5*time.Second, sessions, nil)
	return client, portal, sessions
}

func TestLoginSuccess(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.Do(context.Background(), Request{
		Method:   "POST",
		Path:     "/login",
		JSONBody: dto.LoginRequest{Email: "a@b.com", Password: "x"},
	})
	if !res.OK {
		t.Fatalf("login harus sukses: status=%d message=%q", res.Status, res.Message)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := res.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("token tidak boleh kosong")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	client, _, _ := newTestClient(t)

	res := client.Do(context.Background(), Request{
		Method:   "POST",
		Path:     "/login",
		JSONBody: dto.LoginRequest{Email: "a@b.com", Password: "salah"},
	})
	if res.OK {
		t.Fatalf("login password salah harus gagal")
	}
	if res.Status != 401 {
		t.Fatalf("status = %d, ingin 401", res.Status)
	}
	if res.Message != "Email atau password salah" {
		t.Fatalf("message = %q", res.Message)
	}
	if res.Transport {
		t.Fatalf("gagal server bukan kegagalan transport")
	}
}

func TestRequireAuthWithoutTokenShortCircuits(t *testing.T) {
	client, portal, _ := newTestClient(t)

	res := client.Do(context.Background(), Request{
		Method:      "GET",
		Path:        "/data-pengguna",
		RequireAuth: true,
	})
	if res.OK {
		t.Fatalf("tanpa token harus gagal")
	}
	if !res.AuthFailed() {
		t.Fatalf("tanpa token harus terhitung kegagalan auth")
	}
	if res.Message != MsgSessionExpired {
		t.Fatalf("message = %q", res.Message)
	}
	// Tidak ada request yang keluar sama sekali.
	if hits := portal.Hits("/data-pengguna"); hits != 0 {
		t.Fatalf("server menerima %d request, ingin 0", hits)
	}
}

func TestBearerAttached(t *testing.T) {
	client, portal, sessions := newTestClient(t)
	if err := sessions.Set(portal.IssueToken("a@b.com")); err != nil {
		t.Fatalf("set token: %v", err)
	}

	res := client.Do(context.Background(), Request{
		Method:      "GET",
		Path:        "/data-pengguna",
		RequireAuth: true,
	})
	if !res.OK {
		t.Fatalf("fetch profil harus sukses: status=%d message=%q", res.Status, res.Message)
	}

	var body struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := res.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Name != "Andi Pratama" {
		t.Fatalf("nama = %q", body.User.Name)
	}
}

func TestRejectedTokenCollapsesToAuthFailure(t *testing.T) {
	client, _, sessions := newTestClient(t)
	if err := sessions.Set("token-rusak"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	res := client.Do(context.Background(), Request{
		Method:      "GET",
		Path:        "/matakuliah-saya",
		RequireAuth: true,
	})
	if res.OK || !res.AuthFailed() {
		t.Fatalf("token ditolak harus jadi kegagalan auth, status=%d", res.Status)
	}
}

func TestMultipartUpload(t *testing.T) {
	client, portal, sessions := newTestClient(t)
	if err := sessions.Set(portal.IssueToken("a@b.com")); err != nil {
		t.Fatalf("set token: %v", err)
	}

	path := filepath.Join(t.TempDir(), "jawaban.txt")
	if err := os.WriteFile(path, []byte("isi jawaban"), 0o600); err != nil {
		t.Fatalf("tulis file: %v", err)
	}

	res := client.Do(context.Background(), Request{
		Method: "POST",
		Path:   "/tugas/upload",
		Form: []FormField{
			{Name: "tugas_kode", Value: "T-001"},
			{Name: "jawaban_text", Value: "jawaban saya"},
			{Name: "file", FilePath: path, FileName: "jawaban.txt", MIMEType: "text/plain"},
		},
		RequireAuth: true,
	})
	if !res.OK {
		t.Fatalf("upload harus sukses: status=%d message=%q", res.Status, res.Message)
	}
	if !portal.Submitted("a@b.com", "T-001") {
		t.Fatalf("server harus menandai tugas sudah dikumpulkan")
	}
}

func TestTransportFailure(t *testing.T) {
	// Listener ditutup supaya alamatnya pasti mati.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	sessions := session.New(filepath.Join(t.TempDir(), "token"))
	_ = sessions.Set("apapun")
	client := New("http://"+addr, 2*time.Second, sessions, nil)

	res := client.Do(context.Background(), Request{
		Method:      "GET",
		Path:        "/matakuliah-saya",
		RequireAuth: true,
	})
	if res.OK || !res.Transport {
		t.Fatalf("harus kegagalan transport, dapat %+v", res)
	}
	if res.Message != MsgTransport {
		t.Fatalf("pesan transport harus generik, dapat %q", res.Message)
	}
}
