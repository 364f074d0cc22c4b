package service

import (
	"context"
	"net/url"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/tugas/model"
)

// TugasData mengambil daftar tugas satu matakuliah.
func TugasData(ctx context.Context, c *api.Client, kodeMatakuliah string) ([]model.Tugas, api.Result) {
	return fetchList(ctx, c, "/tugas/data", url.Values{"kode_matakuliah": {kodeMatakuliah}})
}

// TugasTodo mengambil semua tugas yang belum dikumpulkan lintas matakuliah.
func TugasTodo(ctx context.Context, c *api.Client) ([]model.Tugas, api.Result) {
	return fetchList(ctx, c, "/tugas/todo", nil)
}

func fetchList(ctx context.Context, c *api.Client, path string, query url.Values) ([]model.Tugas, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:      "GET",
		Path:        path,
		Query:       query,
		RequireAuth: true,
	})
	if !res.OK {
		return nil, res
	}

	var body struct {
		Data []model.Tugas `json:"data"`
	}
	if err := res.Decode(&body); err != nil {
		return nil, api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body.Data, res
}

// TugasDetail mengambil detail satu tugas.
func TugasDetail(ctx context.Context, c *api.Client, kodeTugas string) (*model.Tugas, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:      "GET",
		Path:        "/tugas/detail",
		Query:       url.Values{"kode_tugas": {kodeTugas}},
		RequireAuth: true,
	})
	if !res.OK {
		return nil, res
	}

	var body struct {
		Data *model.Tugas `json:"data"`
	}
	if err := res.Decode(&body); err != nil || body.Data == nil {
		return nil, api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body.Data, res
}

// UploadPayload adalah isi pengumpulan: teks dan/atau satu media.
type UploadPayload struct {
	KodeTugas   string
	JawabanText string
	File        *api.FormField
}

// UploadTugas mengirim jawaban sebagai satu request multipart.
func UploadTugas(ctx context.Context, c *api.Client, p UploadPayload) api.Result {
	fields := []api.FormField{{Name: "tugas_kode", Value: p.KodeTugas}}
	if p.JawabanText != "" {
		fields = append(fields, api.FormField{Name: "jawaban_text", Value: p.JawabanText})
	}
	if p.File != nil {
		f := *p.File
		f.Name = "file"
		fields = append(fields, f)
	}
	return c.Do(ctx, api.Request{
		Method:      "POST",
		Path:        "/tugas/upload",
		Form:        fields,
		RequireAuth: true,
	})
}
