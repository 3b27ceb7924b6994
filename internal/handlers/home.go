package handlers

import (
	"net/http"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
	httpUtil "github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/utility/http"
)

type HomeHandler struct {
	cfg *config.Config
}

func NewHomeHandler(cfg *config.Config) *HomeHandler {
	return &HomeHandler{cfg: cfg}
}

// Index describes the relay and its endpoints.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	httpUtil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "toyyibpay-callback-server",
		"status":      "ok",
		"environment": h.cfg.Environment(),
		"endpoints": map[string]string{
			"create":   "POST /payment/create",
			"callback": "GET|POST /payment/callback",
			"return":   "GET /payment/return",
			"health":   "GET /health",
		},
	})
}

func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpUtil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "toyyibpay-callback-server",
	})
}
