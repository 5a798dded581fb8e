package response_models

import "github.com/shopspring/decimal"

// PaymentArtifactKind tags what the gateway handed back for a new order.
type PaymentArtifactKind string

const (
	ArtifactQRCode   PaymentArtifactKind = "qr_code"
	ArtifactRedirect PaymentArtifactKind = "redirect"
)

type CreateOrderResponse struct {
	OutTradeNo       string              `json:"out_trade_no"`
	SubscriptionType string              `json:"subscription_type"`
	Name             string              `json:"name"`
	Amount           decimal.Decimal     `json:"amount"`
	DurationDays     int                 `json:"duration_days"`
	ArtifactKind     PaymentArtifactKind `json:"artifact_kind"`
	QRCode           string              `json:"qr_code,omitempty"`
	PayURL           string              `json:"pay_url,omitempty"`
	Status           string              `json:"status"`
	Mock             bool                `json:"mock,omitempty"`
}

type OrderStatusResponse struct {
	OutTradeNo  string          `json:"out_trade_no"`
	Status      string          `json:"status"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	CreatedAt   string          `json:"created_at"`
	PaidAt      string          `json:"paid_at,omitempty"`
	QRCode      string          `json:"qr_code,omitempty"`
	PayURL      string          `json:"pay_url,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderStatusResponse `json:"orders"`
	Page   int                   `json:"page"`
	Limit  int                   `json:"limit"`
	Total  int                   `json:"total"`
}
