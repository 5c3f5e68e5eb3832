package http

import (
	"repurpose-srv/internal/auth"
)

type requestCodeReq struct {
	Email string `json:"email" binding:"required"`
}

func (r requestCodeReq) toInput() auth.RequestCodeInput {
	return auth.RequestCodeInput{Email: r.Email}
}

type requestCodeResp struct {
	Message string `json:"message"`
}

type verifyCodeReq struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (r verifyCodeReq) toInput() auth.VerifyCodeInput {
	return auth.VerifyCodeInput{
		Email: r.Email,
		Code:  r.Code,
	}
}

type verifyCodeResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *handler) newVerifyCodeResp(o auth.VerifyCodeOutput) verifyCodeResp {
	return verifyCodeResp{
		Token: o.Token,
		User: userResp{
			ID:    o.User.ID,
			Email: o.User.Email,
		},
	}
}

type meResp struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	HasSupadataKey bool   `json:"hasSupadataKey"`
	HasApifyKey    bool   `json:"hasApifyKey"`
}

func (h *handler) newMeResp(o auth.MeOutput) meResp {
	return meResp{
		ID:             o.User.ID,
		Email:          o.User.Email,
		HasSupadataKey: o.HasSupadataKey,
		HasApifyKey:    o.HasApifyKey,
	}
}

type updateKeysReq struct {
	SupadataAPIKey *string `json:"supadataApiKey"`
	ApifyAPIKey    *string `json:"apifyApiKey"`
}

func (r updateKeysReq) toInput() auth.UpdateKeysInput {
	return auth.UpdateKeysInput{
		SupadataAPIKey: r.SupadataAPIKey,
		ApifyAPIKey:    r.ApifyAPIKey,
	}
}

type updateKeysResp struct {
	Message string `json:"message"`
}
