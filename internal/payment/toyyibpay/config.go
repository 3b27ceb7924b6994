package toyyibpay

const (
	// ProdHostURL Production gateway
	ProdHostURL = "https://toyyibpay.com"

	// SandboxHostURL Development/sandbox gateway
	SandboxHostURL = "https://dev.toyyibpay.com"

	// CreateBillEndpoint End point for bill creation
	CreateBillEndpoint = "/index.php/api/createBill"
)

// BaseEndpoint returns the gateway host for the selected environment.
func BaseEndpoint(sandbox bool) string {
	if sandbox {
		return SandboxHostURL
	}
	return ProdHostURL
}

// PaymentPageURL builds the hosted payment page address for a bill code.
// The gateway serves bills directly under its host root.
func PaymentPageURL(sandbox bool, billCode string) string {
	return BaseEndpoint(sandbox) + "/" + billCode
}
