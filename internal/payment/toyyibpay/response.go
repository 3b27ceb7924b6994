package toyyibpay

import (
	"encoding/json"
	"strings"
)

// BillResult is what bill creation hands back to the handler.
type BillResult struct {
	BillCode   string
	PaymentURL string
}

// createBillReply is the parse outcome for a gateway body: either a
// recognized bill carrying a code and/or a direct URL, or the raw
// unrecognized shape.
type createBillReply struct {
	Recognized bool
	Code       string
	URL        string
	Raw        []byte
}

// parseCreateBillResponse reads the gateway's loosely-typed reply. The
// documented shape is a one-element JSON array, but bare objects and mixed
// BillCode/billCode, BillURL/billUrl casing appear in the wild. A body
// without a code or URL stays unrecognized.
func parseCreateBillResponse(body []byte) createBillReply {
	reply := createBillReply{Raw: body}

	var first map[string]json.RawMessage
	var arr []map[string]json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		if len(arr) == 0 {
			return reply
		}
		first = arr[0]
	} else if err := json.Unmarshal(body, &first); err != nil {
		return reply
	}

	reply.Code = stringField(first, "BillCode", "billCode", "billcode")
	reply.URL = stringField(first, "BillURL", "billUrl", "billurl", "BillpaymentUrl")
	reply.Recognized = reply.Code != "" || reply.URL != ""
	return reply
}

func stringField(m map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
