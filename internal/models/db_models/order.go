package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeSubscription OrderType = "subscription"
	OrderTypeProduct      OrderType = "product"
)

// Order records one purchase attempt. OutTradeNo is the merchant order
// number the gateway echoes back in notifications; it is the external
// identity of the order. Status only ever moves forward: pending is the
// only non-terminal state.
type Order struct {
	BaseModel
	OutTradeNo string    `gorm:"uniqueIndex;size:64"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`

	Name        string
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)"`
	PaymentType string          `gorm:"size:16"` // alipay | wechat | union
	Status      OrderStatus     `gorm:"size:16;index;default:pending"`

	OrderType        OrderType `gorm:"size:16;index"`
	SubscriptionType string    `gorm:"size:32"` // monthly_3 | yearly | lifetime
	DurationDays     int       // 0 = permanent (lifetime)

	// Set after the gateway responds.
	PayURL  string
	QRCode  string
	TradeNo string `gorm:"size:64;index"` // provider-side transaction number

	ClientIP string `gorm:"size:45"`
	Device   string `gorm:"size:16"`
	PaidAt   *int64

	// Raw gateway payloads, extension params.
	Params datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:UserID"`
}
