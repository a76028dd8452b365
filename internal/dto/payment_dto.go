package dto

// MidtransWebhookRequest is the payment provider's transaction status
// notification.
type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status" validate:"required"`
	OrderId           string `json:"order_id" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key" validate:"required"`
	StatusCode   string `json:"status_code" validate:"required"`
	GrossAmount  string `json:"gross_amount" validate:"required"`
}

type PlanResponse struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Price   int64  `json:"price"`
	Ceiling int    `json:"ceiling"`
}
