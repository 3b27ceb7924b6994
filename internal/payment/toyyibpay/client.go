package toyyibpay

import (
	"context"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/apperr"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
	httpClient "github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/utility/http"
)

// Client talks to the ToyyibPay bill API for one configured environment.
type Client struct {
	cfg  *config.Config
	http *httpClient.Client
	base string
}

func New(cfg *config.Config, hc *httpClient.Client) *Client {
	return &Client{cfg: cfg, http: hc, base: BaseEndpoint(cfg.Sandbox)}
}

// CreateBill registers one bill with the gateway and resolves the hosted
// payment page URL. Credentials are checked before anything leaves the
// process; at most one outbound call is made.
func (c *Client) CreateBill(ctx context.Context, bill Bill) (BillResult, error) {
	if !c.cfg.HasCredentials() {
		return BillResult{}, apperr.Configuration("gateway credentials are not configured")
	}

	resp, err := c.http.PostForm(ctx, c.base+CreateBillEndpoint, c.formValues(bill))
	if err != nil {
		return BillResult{}, apperr.From(err)
	}
	if !resp.Success() {
		return BillResult{}, apperr.Upstream(resp.StatusCode, string(resp.Body))
	}

	reply := parseCreateBillResponse(resp.Body)
	if !reply.Recognized {
		return BillResult{}, apperr.BadGateway("gateway response carried no bill code or URL", string(reply.Raw))
	}

	payURL := reply.URL
	if payURL == "" {
		payURL = PaymentPageURL(c.cfg.Sandbox, reply.Code)
	}
	return BillResult{BillCode: reply.Code, PaymentURL: payURL}, nil
}
