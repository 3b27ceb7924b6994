package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/apperr"
)

type errorResponse struct {
	Success  bool     `json:"success"`
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Fields   []string `json:"fields,omitempty"`
	Upstream string   `json:"upstream,omitempty"`
}

// RespondJSON writes v as the whole response body.
func RespondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// RespondAppError converts a classified failure into the error envelope.
// Upstream bodies ride along verbatim so the caller sees what the gateway
// said.
func RespondAppError(w http.ResponseWriter, e *apperr.Error) {
	if e.Err != nil {
		log.Printf("Error: %v", e)
	}
	RespondJSON(w, e.Status, &errorResponse{
		Success:  false,
		Code:     e.Status,
		Message:  e.Message,
		Fields:   e.Fields,
		Upstream: e.Body,
	})
}
