package service

import (
	"context"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/features/auth/dto"
)

// Login menukar email+password dengan bearer token.
// Token TIDAK disimpan di sini; itu tanggung jawab pemanggil.
func Login(ctx context.Context, c *api.Client, req dto.LoginRequest) (string, api.Result) {
	res := c.Do(ctx, api.Request{
		Method:   "POST",
		Path:     "/login",
		JSONBody: req,
	})
	if !res.OK {
		return "", res
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := res.Decode(&body); err != nil || body.Token == "" {
		return "", api.Result{Transport: true, Message: api.MsgTransport}
	}
	return body.Token, res
}
