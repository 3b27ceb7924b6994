package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
)

const returnPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Payment Status</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; background: #f5f6fa; margin: 0; }
  .card { max-width: 520px; margin: 60px auto; background: #fff; border-radius: 8px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,.08); }
  h1 { margin-top: 0; font-size: 1.4em; }
  .ok { color: #1e8e3e; }
  .fail { color: #c5221f; }
  dt { font-weight: bold; margin-top: 12px; color: #555; }
  dd { margin: 2px 0 0; }
  .env { margin-top: 24px; font-size: .8em; color: #999; }
</style>
</head>
<body>
<div class="card">
{{if .Success}}<h1 class="ok">Payment Successful</h1>
<p>Thank you. Your payment has been received.</p>
{{else}}<h1 class="fail">Payment Not Completed</h1>
<p>The payment was not completed. You can close this page and try again.</p>
{{end}}<dl>
{{if .BillCode}}<dt>Bill Code</dt><dd>{{.BillCode}}</dd>{{end}}
{{if .OrderID}}<dt>Order ID</dt><dd>{{.OrderID}}</dd>{{end}}
{{if .TransactionID}}<dt>Transaction ID</dt><dd>{{.TransactionID}}</dd>{{end}}
{{if .Amount}}<dt>Amount</dt><dd>{{.Amount}}</dd>{{end}}
{{if .Message}}<dt>Message</dt><dd>{{.Message}}</dd>{{end}}
</dl>
<p class="env">Environment: {{.Environment}}</p>
</div>
</body>
</html>
`

var returnTmpl = template.Must(template.New("return").Parse(returnPage))

type returnPageData struct {
	Success       bool
	BillCode      string
	OrderID       string
	TransactionID string
	Amount        string
	Message       string
	Environment   string
}

type ReturnHandler struct {
	cfg *config.Config
}

func NewReturnHandler(cfg *config.Config) *ReturnHandler {
	return &ReturnHandler{cfg: cfg}
}

// Handle renders the page the payer's browser lands on after the gateway
// redirects back. Echoed query parameters pass through template escaping.
func (h *ReturnHandler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	statusID := q.Get("status_id")
	if statusID == "" {
		statusID = q.Get("status")
	}

	data := returnPageData{
		Success:       statusID == "1",
		BillCode:      q.Get("billcode"),
		OrderID:       q.Get("order_id"),
		TransactionID: q.Get("transaction_id"),
		Amount:        q.Get("amount"),
		Message:       q.Get("msg"),
		Environment:   h.cfg.Environment(),
	}

	log.Printf("[return] order_id=%s status_id=%s success=%t", data.OrderID, statusID, data.Success)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := returnTmpl.Execute(w, data); err != nil {
		log.Printf("[return] template execute: %v", err)
	}
}
