package request_models

type CreateSubscriptionOrderRequest struct {
	SubscriptionType string `json:"subscription_type" binding:"required,oneof=monthly_3 yearly lifetime"`
	PaymentType      string `json:"payment_type" binding:"omitempty,oneof=alipay wechat union"`
}
