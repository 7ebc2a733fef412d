package dto

import (
	"github.com/google/uuid"
)

type CheckoutRequest struct {
	PlanId       string `json:"plan_id" validate:"required_without=PackId"`
	PackId       string `json:"pack_id" validate:"required_without=PlanId"`
	BillingCycle string `json:"billing_cycle"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty"`
}

type CheckoutResponse struct {
	OrderId         string  `json:"order_id"`
	GrossAmount     float64 `json:"gross_amount"`
	SnapRedirectUrl string  `json:"snap_redirect_url"`
	SnapToken       string  `json:"snap_token"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type OrderStatusResponse struct {
	OrderId       string    `json:"order_id"`
	PaymentStatus string    `json:"payment_status"`
	PlanId        string    `json:"plan_id,omitempty"`
	PackId        string    `json:"pack_id,omitempty"`
	UserId        uuid.UUID `json:"user_id"`
}
