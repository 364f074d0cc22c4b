package service

import (
	"context"
	"net/url"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/kuliah/model"
)

// MatakuliahSaya mengambil daftar matakuliah yang sedang diambil.
func MatakuliahSaya(ctx context.Context, c *api.Client) ([]model.Matakuliah, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:      "GET",
		Path:        "/matakuliah-saya",
		RequireAuth: true,
	})
	if !res.OK {
		return nil, res
	}

	var body struct {
		Matkul []model.Matakuliah `json:"matkul"`
	}
	if err := res.Decode(&body); err != nil {
		return nil, api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body.Matkul, res
}

// ModulData mengambil daftar modul satu matakuliah.
func ModulData(ctx context.Context, c *api.Client, kodeMatakuliah string) ([]model.Modul, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:      "GET",
		Path:        "/moduls/data",
		Query:       url.Values{"kode_matakuliah": {kodeMatakuliah}},
		RequireAuth: true,
	})
	if !res.OK {
		return nil, res
	}

	var body struct {
		Data []model.Modul `json:"data"`
	}
	if err := res.Decode(&body); err != nil {
		return nil, api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body.Data, res
}
