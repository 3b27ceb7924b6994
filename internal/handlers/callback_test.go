package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signOrderID(secret, orderID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID))
	return hex.EncodeToString(mac.Sum(nil))
}

func assertAcknowledged(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestCallback_GETIsAcknowledged(t *testing.T) {
	handler := NewCallbackHandler(relayConfig())

	req := httptest.NewRequest(http.MethodGet, "/payment/callback?status=1&order_id=o-1&billcode=abc", nil)
	rr := httptest.NewRecorder()
	handler.Handle(rr, req)

	assertAcknowledged(t, rr)
}

func TestCallback_POSTFormIsAcknowledged(t *testing.T) {
	handler := NewCallbackHandler(relayConfig())

	form := url.Values{}
	form.Set("refno", "TP123")
	form.Set("status", "1")
	form.Set("billcode", "abc")
	form.Set("order_id", "o-1")
	form.Set("amount", "19.99")

	req := httptest.NewRequest(http.MethodPost, "/payment/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.Handle(rr, req)

	assertAcknowledged(t, rr)
}

func TestCallback_POSTJSONIsAcknowledged(t *testing.T) {
	handler := NewCallbackHandler(relayConfig())

	req := httptest.NewRequest(http.MethodPost, "/payment/callback", strings.NewReader(`{"status":"1","order_id":"o-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.Handle(rr, req)

	assertAcknowledged(t, rr)
}

func TestCallback_MalformedPayloadsStillAcknowledged(t *testing.T) {
	handler := NewCallbackHandler(relayConfig())

	cases := []struct {
		name        string
		method      string
		body        string
		contentType string
	}{
		{"empty body", http.MethodPost, "", ""},
		{"broken json", http.MethodPost, `{"status": `, "application/json"},
		{"json array", http.MethodPost, `[1,2,3]`, "application/json"},
		{"bad urlencoding", http.MethodPost, "a=%zz%", "application/x-www-form-urlencoded"},
		{"bare GET", http.MethodGet, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/payment/callback", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rr := httptest.NewRecorder()
			handler.Handle(rr, req)

			assertAcknowledged(t, rr)
		})
	}
}

func TestMergeCallbackParams_BodyWinsOverQuery(t *testing.T) {
	form := url.Values{}
	form.Set("status", "1")
	form.Set("billcode", "frombody")

	req := httptest.NewRequest(http.MethodPost, "/payment/callback?status=0&src=query", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	params := mergeCallbackParams(req)

	assert.Equal(t, "1", params["status"])
	assert.Equal(t, "frombody", params["billcode"])
	assert.Equal(t, "query", params["src"])
}

func TestMergeCallbackParams_JSONKeepsNumberFormatting(t *testing.T) {
	body := `{"order_id":"o-9","amount":12.50,"refno":9007199254740993,"paid":true,"nested":{"x":1}}`
	req := httptest.NewRequest(http.MethodPost, "/payment/callback?src=query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	params := mergeCallbackParams(req)

	assert.Equal(t, "o-9", params["order_id"])
	assert.Equal(t, "12.50", params["amount"])
	assert.Equal(t, "9007199254740993", params["refno"])
	assert.Equal(t, "true", params["paid"])
	assert.Equal(t, "query", params["src"])
	_, hasNested := params["nested"]
	assert.False(t, hasNested)
}

func TestVerifySignature(t *testing.T) {
	cfg := relayConfig()
	cfg.VerifySecret = "topsecret"
	handler := NewCallbackHandler(cfg)

	assert.True(t, handler.verifySignature("o-1", signOrderID("topsecret", "o-1")))
	assert.False(t, handler.verifySignature("o-1", "deadbeef"))
	assert.False(t, handler.verifySignature("o-1", signOrderID("othersecret", "o-1")))
}

func TestCallback_VerificationNeverChangesResponse(t *testing.T) {
	cfg := relayConfig()
	cfg.VerifySecret = "topsecret"
	handler := NewCallbackHandler(cfg)

	for _, signature := range []string{signOrderID("topsecret", "o-1"), "wrong"} {
		form := url.Values{}
		form.Set("order_id", "o-1")
		form.Set("signature", signature)

		req := httptest.NewRequest(http.MethodPost, "/payment/callback", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		handler.Handle(rr, req)

		assertAcknowledged(t, rr)
	}
}
