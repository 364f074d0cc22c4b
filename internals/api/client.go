package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"kampusku_mobile/internals/session"
)

// Pesan generik untuk kegagalan transport / body tidak valid.
// Pesan server tidak pernah dipakai di jalur ini.
const (
	MsgTransport      = "Tidak dapat terhubung ke server"
	MsgSessionExpired = "Sesi berakhir, silakan login ulang"
)

// Client membangun dan mengirim request HTTP ke API portal.
// Semua screen memakai satu client yang sama.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Sessions *session.Store
	Logger   *log.Logger
}

func New(baseURL string, timeout time.Duration, sessions *session.Store, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: timeout},
		Sessions: sessions,
		Logger:   logger,
	}
}

// FormField adalah satu field multipart: nilai teks biasa,
// atau file (FilePath terisi).
type FormField struct {
	Name     string
	Value    string
	FilePath string
	FileName string
	MIMEType string
}

func (f FormField) isFile() bool { return f.FilePath != "" }

type Request struct {
	Method      string
	Path        string
	Query       url.Values
	JSONBody    any
	Form        []FormField
	RequireAuth bool
}

// Result adalah bentuk respons yang sudah dinormalisasi untuk semua screen.
// Non-2xx biasa tidak pernah jadi error Go; screen cukup cek OK dan Message.
type Result struct {
	OK        bool
	Status    int
	Data      json.RawMessage
	Message   string
	Transport bool
}

// AuthFailed menandai kegagalan autentikasi. Token absen dan token
// ditolak server sengaja tidak dibedakan; dua-duanya berakhir di login.
func (r Result) AuthFailed() bool {
	return r.Status == http.StatusUnauthorized || r.Status == http.StatusForbidden
}

// MessageOr mengembalikan pesan server, atau fallback jika kosong.
func (r Result) MessageOr(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

// Do mengirim satu request dan mengembalikan hasil ternormalisasi.
// Tidak ada retry; timeout mengikuti http.Client bawaan.
func (c *Client) Do(ctx context.Context, r Request) Result {
	token := ""
	if r.RequireAuth {
		token = c.Sessions.Get()
		if token == "" {
			// Short-circuit: tanpa token tidak ada request yang keluar.
			return Result{Status: http.StatusUnauthorized, Message: MsgSessionExpired}
		}
	}

	target := c.BaseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.JSONBody != nil:
		b, err := sonic.Marshal(r.JSONBody)
		if err != nil {
			return Result{Transport: true, Message: MsgTransport}
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case len(r.Form) > 0:
		buf, ct, err := buildMultipart(r.Form)
		if err != nil {
			return Result{Transport: true, Message: MsgTransport}
		}
		body = buf
		contentType = ct
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return Result{Transport: true, Message: MsgTransport}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Printf("[API] id=%s %s %s gagal: %v", reqID, r.Method, r.Path, err)
		return Result{Transport: true, Message: MsgTransport}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Printf("[API] id=%s %s %s body error: %v", reqID, r.Method, r.Path, err)
		return Result{Transport: true, Message: MsgTransport}
	}
	c.Logger.Printf("[API] id=%s %s %s status=%d dur=%s", reqID, r.Method, r.Path, resp.StatusCode, time.Since(start))

	res := Result{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Data:   json.RawMessage(raw),
	}

	// Field yang absen ditoleransi; hanya pesan yang diambil di sini.
	var envelope struct {
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		if res.OK {
			// Sukses tapi body bukan JSON = respons rusak.
			return Result{Transport: true, Message: MsgTransport}
		}
	}
	res.Message = envelope.Message
	return res
}

// Decode mengisi out dari body respons. Field yang tidak ada dibiarkan
// bernilai kosong, bukan error.
func (r Result) Decode(out any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return sonic.Unmarshal(r.Data, out)
}

func buildMultipart(fields []FormField) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range fields {
		if !f.isFile() {
			if err := w.WriteField(f.Name, f.Value); err != nil {
				return nil, "", err
			}
			continue
		}
		name := f.FileName
		if name == "" {
			name = filepath.Base(f.FilePath)
		}
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Name, name))
		if f.MIMEType != "" {
			h.Set("Content-Type", f.MIMEType)
		} else {
			h.Set("Content-Type", "application/octet-stream")
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		src, err := os.Open(f.FilePath)
		if err != nil {
			return nil, "", err
		}
		_, err = io.Copy(part, src)
		src.Close()
		if err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
