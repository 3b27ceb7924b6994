package toyyibpay

import (
	"net/url"
	"strconv"
)

// Bill is the normalized bill-creation input. Amount is already converted
// to integer minor units and the order identifier is the caller's external
// reference.
type Bill struct {
	Name        string
	Description string
	AmountCents int64
	OrderID     string
	Email       string
	Phone       string
	ReturnURL   string
	CallbackURL string
}

// Gateway field limits. The description feeds two fields with different
// caps: billDescription at 100 and billContentEmail at 200.
const (
	billNameLimit         = 100
	billDescriptionLimit  = 100
	billContentEmailLimit = 200
)

// formValues flattens the bill onto the gateway's form schema.
func (c *Client) formValues(b Bill) url.Values {
	payorInfo := "0"
	if b.Email != "" || b.Phone != "" {
		payorInfo = "1"
	}

	v := url.Values{}
	v.Set("userSecretKey", c.cfg.SecretKey)
	v.Set("categoryCode", c.cfg.CategoryCode)
	v.Set("billName", truncate(b.Name, billNameLimit))
	v.Set("billDescription", truncate(b.Description, billDescriptionLimit))
	v.Set("billPriceSetting", "1")
	v.Set("billPayorInfo", payorInfo)
	v.Set("billAmount", strconv.FormatInt(b.AmountCents, 10))
	v.Set("billReturnUrl", b.ReturnURL)
	v.Set("billCallbackUrl", b.CallbackURL)
	v.Set("billExternalReferenceNo", b.OrderID)
	v.Set("billTo", b.Name)
	v.Set("billEmail", b.Email)
	v.Set("billPhone", b.Phone)
	v.Set("billPaymentChannel", "2")
	v.Set("billContentEmail", truncate(b.Description, billContentEmailLimit))
	return v
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
