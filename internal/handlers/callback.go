package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
)

type CallbackHandler struct {
	cfg *config.Config
}

func NewCallbackHandler(cfg *config.Config) *CallbackHandler {
	return &CallbackHandler{cfg: cfg}
}

// Handle processes the gateway's payment-status notification, GET or POST.
// The gateway expects a 200 acknowledgement no matter what the payload looks
// like, so verification and parsing problems are logged and never change the
// response.
func (h *CallbackHandler) Handle(w http.ResponseWriter, r *http.Request) {
	event := uuid.NewString()
	params := mergeCallbackParams(r)

	log.Printf("[callback] event=%s method=%s params=%d order_id=%s status=%s billcode=%s",
		event, r.Method, len(params), params["order_id"], params["status"], params["billcode"])
	if h.cfg.Debug {
		for k, v := range params {
			log.Printf("[callback] event=%s %s=%s", event, k, v)
		}
	}

	if h.cfg.VerifySecret != "" {
		signature, orderID := params["signature"], params["order_id"]
		if signature != "" && orderID != "" {
			log.Printf("[callback] event=%s signature_valid=%t", event, h.verifySignature(orderID, signature))
		} else {
			log.Printf("[callback] event=%s signature_valid=skipped (no signature or order_id)", event)
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "OK")
}

// verifySignature recomputes hex HMAC-SHA256 over the order identifier with
// the shared secret. NOTE: plain equality, not constant-time.
func (h *CallbackHandler) verifySignature(orderID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.VerifySecret))
	mac.Write([]byte(orderID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return expected == signature
}

// mergeCallbackParams flattens URL query parameters and the request body
// (urlencoded form or JSON object) into one mapping. Body values win on
// conflict, matching how r.Form orders things. A body that cannot be parsed
// contributes nothing.
func mergeCallbackParams(r *http.Request) map[string]string {
	params := make(map[string]string)

	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	if r.Body == nil {
		return params
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var payload map[string]interface{}
		if err := dec.Decode(&payload); err != nil {
			return params
		}
		for key, value := range payload {
			switch v := value.(type) {
			case string:
				params[key] = v
			case json.Number:
				params[key] = v.String()
			case bool:
				params[key] = strconv.FormatBool(v)
			}
		}
		return params
	}

	if err := r.ParseForm(); err != nil {
		return params
	}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
