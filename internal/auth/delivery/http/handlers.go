package http

import (
	"net/http"

	"repurpose-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Request a sign-in code
// @Description Email a one-time sign-in code to the given address
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestCodeReq true "Sign-in code request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /authentication/code [post]
func (h *handler) RequestCode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequestCodeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.RequestCode: processRequestCodeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.RequestCode(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.RequestCode: usecase RequestCode failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, requestCodeResp{Message: "Verification code sent"})
}

// @Summary Verify a sign-in code
// @Description Exchange the emailed code for a session token, also set as an HTTP-only cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body verifyCodeReq true "Code verification request"
// @Success 200 {object} verifyCodeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /authentication/verify [post]
func (h *handler) VerifyCode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyCodeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.VerifyCode: processVerifyCodeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.VerifyCode(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.VerifyCode: usecase VerifyCode failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newVerifyCodeResp(o))
}

// @Summary Get the signed-in user
// @Description Return the current user's profile and which provider keys are configured
// @Tags Authentication
// @Produce json
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /authentication/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := h.processScopedRequest(c)

	o, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.Me: usecase Me failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMeResp(o))
}

// @Summary Update provider API keys
// @Description Store the user's Supadata and Apify API keys, encrypted at rest
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body updateKeysReq true "Provider keys"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /authentication/keys [put]
func (h *handler) UpdateKeys(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateKeysRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.UpdateKeys: processUpdateKeysRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.UpdateKeys(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.UpdateKeys: usecase UpdateKeys failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, updateKeysResp{Message: "API keys updated"})
}

// @Summary Sign out
// @Description Clear the auth cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Resp
// @Router /authentication/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	response.OK(c, requestCodeResp{Message: "Signed out"})
}

func (h *handler) setAuthCookie(c *gin.Context, token string) {
	h.applySameSite(c)
	c.SetCookie(h.cookieCfg.Name, token, h.cookieCfg.MaxAge, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func (h *handler) clearAuthCookie(c *gin.Context) {
	h.applySameSite(c)
	c.SetCookie(h.cookieCfg.Name, "", -1, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, true)
}

func (h *handler) applySameSite(c *gin.Context) {
	switch h.cookieCfg.SameSite {
	case "strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "none":
		c.SetSameSite(http.SameSiteNoneMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
}
