package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Amount is the bill amount in currency units. Client payloads are not
// consistent about the wire type, so both "12.50" and 12.5 decode into it.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string { return string(a) }

// MinorUnits converts the amount to the gateway's integer cent
// representation: round(amount * 100) on the float64 product, halves away
// from zero. The same input always yields the same output. NaN, infinities
// and products past int64 are rejected; ParseFloat accepts them all.
func (a Amount) MinorUnits() (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("amount is not numeric")
	}
	if f < 0 {
		return 0, errors.New("amount is negative")
	}
	cents := math.Round(f * 100)
	if cents >= float64(math.MaxInt64) {
		return 0, errors.New("amount is too large")
	}
	return int64(cents), nil
}

// BillRequest is the inbound bill-creation payload, accepted as JSON or as
// an urlencoded form with the same field names.
type BillRequest struct {
	Amount      Amount `json:"amount" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	OrderID     string `json:"orderId" validate:"required"`
	Description string `json:"description" validate:"required"`
	ReturnURL   string `json:"returnUrl"`
	CallbackURL string `json:"callbackUrl"`
}

// BillResponse echoes what the gateway issued plus the URLs the bill was
// registered with. BillCode stays null when the gateway only returned a
// direct payment URL.
type BillResponse struct {
	PaymentURL  string  `json:"paymentUrl"`
	BillCode    *string `json:"billCode"`
	OrderID     string  `json:"orderId"`
	CallbackURL string  `json:"callbackUrl"`
	ReturnURL   string  `json:"returnUrl"`
	Environment string  `json:"environment"`
}
