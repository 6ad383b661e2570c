package routes

import (
	"github.com/go-chi/chi/v5"

	captchaHandler "artprize/internal/api/handlers/captcha"
	"artprize/internal/core/votes"
)

// RegisterCaptchaRoutes registers the captcha proxy endpoint on the router.
func RegisterCaptchaRoutes(r chi.Router, verifier votes.CaptchaVerifier) {
	verifyHandler := captchaHandler.NewVerifyHandler(verifier)

	// POST /captcha/verify - server-side siteverify proxy
	r.Post("/captcha/verify", verifyHandler.HandleVerify)
}
