package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"herhzzz/internal/models/db_models"
	"herhzzz/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// amountTolerance absorbs rounding drift between the stored amount and the
// amount echoed back by the gateway.
var amountTolerance = decimal.NewFromFloat(0.01)

type OrderRepository interface {
	Create(ctx context.Context, order *db_models.Order) error
	GetByOrderNumber(ctx context.Context, outTradeNo string) (*db_models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]db_models.Order, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdatePaymentInfo(ctx context.Context, outTradeNo, payURL, qrCode, tradeNo string) error
	TransitionToPaid(ctx context.Context, outTradeNo string, notifiedAmount decimal.Decimal, tradeNo string, rawNotify datatypes.JSON) (*db_models.Order, error)
	MarkFailed(ctx context.Context, outTradeNo string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *db_models.Order) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if err != nil && isUniqueViolation(err) {
		return utils.ErrDuplicateOrderNumber
	}
	return err
}

func (r *orderRepository) GetByOrderNumber(ctx context.Context, outTradeNo string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).First(&order, "out_trade_no = ?", outTradeNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) UpdatePaymentInfo(ctx context.Context, outTradeNo, payURL, qrCode, tradeNo string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("out_trade_no = ?", outTradeNo).
		Updates(map[string]interface{}{
			"pay_url":  payURL,
			"qr_code":  qrCode,
			"trade_no": tradeNo,
		}).Error
}

// TransitionToPaid is the only write path that moves an order out of
// pending into paid. The update is guarded by a compare-and-swap on
// status='pending'; when a duplicate notification and a manual status check
// race, whichever reaches the update first wins and the loser observes
// ErrOrderAlreadyPaid, which callers treat as success without re-crediting
// membership.
func (r *orderRepository) TransitionToPaid(ctx context.Context, outTradeNo string, notifiedAmount decimal.Decimal, tradeNo string, rawNotify datatypes.JSON) (*db_models.Order, error) {
	order, err := r.GetByOrderNumber(ctx, outTradeNo)
	if err != nil {
		return nil, err
	}

	if order.Status == db_models.OrderStatusPaid {
		return order, utils.ErrOrderAlreadyPaid
	}
	if order.Status != db_models.OrderStatusPending {
		return nil, utils.ErrInvalidTransition
	}
	if order.Amount.Sub(notifiedAmount).Abs().GreaterThan(amountTolerance) {
		return nil, utils.ErrAmountMismatch
	}

	now := time.Now().Unix()
	updates := map[string]interface{}{
		"status":   db_models.OrderStatusPaid,
		"paid_at":  now,
		"trade_no": tradeNo,
	}
	if len(rawNotify) > 0 {
		// audit copy of the callback that settled the order
		updates["params"] = rawNotify
	}
	res := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("out_trade_no = ? AND status = ?", outTradeNo, db_models.OrderStatusPending).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return order, utils.ErrOrderAlreadyPaid
	}

	order.Status = db_models.OrderStatusPaid
	order.PaidAt = &now
	order.TradeNo = tradeNo
	if len(rawNotify) > 0 {
		order.Params = rawNotify
	}
	return order, nil
}

func (r *orderRepository) MarkFailed(ctx context.Context, outTradeNo string) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("out_trade_no = ? AND status = ?", outTradeNo, db_models.OrderStatusPending).
		Update("status", db_models.OrderStatusFailed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrInvalidTransition
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx surfaces SQLSTATE 23505 in the error text when the gorm
	// translator is not enabled
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
