package service

import (
	"context"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/user/dto"
	"kampusku_mobile/internals/features/user/model"
)

// Pengguna adalah respons gabungan /data-pengguna.
type Pengguna struct {
	User      *model.User      `json:"user"`
	Mahasiswa *model.Mahasiswa `json:"mahasiswa"`
}

// DataPengguna mengambil profil akun + data mahasiswa. Kegagalan non-transport
// pada endpoint ini diperlakukan screen sebagai sesi yang tidak valid.
func DataPengguna(ctx context.Context, c *api.Client) (Pengguna, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:      "GET",
		Path:        "/data-pengguna",
		RequireAuth: true,
	})
	if !res.OK {
		return Pengguna{}, res
	}

	var body Pengguna
	if err := res.Decode(&body); err != nil {
		return Pengguna{}, api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body, res
}

// UpdateUser memperbarui nama/email/password. Fire-and-forget: tidak ada
// rekonsiliasi lokal, layar profil fetch ulang saat kembali fokus.
func UpdateUser(ctx context.Context, c *api.Client, req dto.UpdateUserRequest) api.Result {
	return c.Do(ctx, api.Request{
		Method:      "PUT",
		Path:        "/update-user",
		JSONBody:    req,
		RequireAuth: true,
	})
}

// UpdatePhoto mengunggah foto profil baru sebagai multipart field "photo".
func UpdatePhoto(ctx context.Context, c *api.Client, file api.FormField) api.Result {
	file.Name = "photo"
	return c.Do(ctx, api.Request{
		Method:      "POST",
		Path:        "/update-photo",
		Form:        []api.FormField{file},
		RequireAuth: true,
	})
}
