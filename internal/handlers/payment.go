package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/apperr"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/config"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/models"
	"github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/payment/toyyibpay"
	httpUtil "github.com/filzahsym13-hue/toyyibpay-callback-server-render/internal/utility/http"
)

var validate = validator.New()

func init() {
	// report field names the way the client sent them
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// BillCreator registers a bill with the payment gateway.
type BillCreator interface {
	CreateBill(ctx context.Context, bill toyyibpay.Bill) (toyyibpay.BillResult, error)
}

type PaymentHandler struct {
	cfg     *config.Config
	gateway BillCreator
}

func NewPaymentHandler(cfg *config.Config, gateway BillCreator) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, gateway: gateway}
}

// CreateBill handles POST /payment/create: validates the inbound payload,
// registers one bill with the gateway and answers with the hosted payment
// page URL.
func (h *PaymentHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBillRequest(r)
	if err != nil {
		httpUtil.RespondAppError(w, apperr.Validation("request body could not be parsed"))
		return
	}

	if err := validateBillRequest(req); err != nil {
		httpUtil.RespondAppError(w, err)
		return
	}

	cents, err := req.Amount.MinorUnits()
	if err != nil {
		httpUtil.RespondAppError(w, apperr.Validation(err.Error(), "amount"))
		return
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = h.cfg.ReturnURL
	}
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = h.cfg.CallbackURL
	}

	result, err := h.gateway.CreateBill(r.Context(), toyyibpay.Bill{
		Name:        req.Name,
		Description: req.Description,
		AmountCents: cents,
		OrderID:     req.OrderID,
		Email:       req.Email,
		Phone:       req.Phone,
		ReturnURL:   returnURL,
		CallbackURL: callbackURL,
	})
	if err != nil {
		httpUtil.RespondAppError(w, apperr.From(err))
		return
	}

	log.Printf("[payment] bill created order_id=%s bill_code=%s env=%s", req.OrderID, result.BillCode, h.cfg.Environment())

	var billCode *string
	if result.BillCode != "" {
		billCode = &result.BillCode
	}
	httpUtil.RespondJSON(w, http.StatusOK, &models.BillResponse{
		PaymentURL:  result.PaymentURL,
		BillCode:    billCode,
		OrderID:     req.OrderID,
		CallbackURL: callbackURL,
		ReturnURL:   returnURL,
		Environment: h.cfg.Environment(),
	})
}

// decodeBillRequest accepts the payload as JSON or as an urlencoded form
// with the same field names.
func decodeBillRequest(r *http.Request) (models.BillRequest, error) {
	var req models.BillRequest

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Amount = models.Amount(strings.TrimSpace(r.PostForm.Get("amount")))
	req.Name = r.PostForm.Get("name")
	req.Email = r.PostForm.Get("email")
	req.Phone = r.PostForm.Get("phone")
	req.OrderID = r.PostForm.Get("orderId")
	req.Description = r.PostForm.Get("description")
	req.ReturnURL = r.PostForm.Get("returnUrl")
	req.CallbackURL = r.PostForm.Get("callbackUrl")
	return req, nil
}

func validateBillRequest(req models.BillRequest) *apperr.Error {
	validationErr := validate.Struct(req)
	if validationErr == nil {
		return nil
	}

	verrs, ok := validationErr.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("request is not valid")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return apperr.Validation("required fields are missing or invalid", fields...)
}
