package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"herhzzz/internal/models/db_models"
	"herhzzz/internal/models/request_models"
	"herhzzz/internal/models/response_models"
	"herhzzz/internal/repositories"
	"herhzzz/internal/zpay"
	"herhzzz/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentServiceInterface interface {
	CreateSubscriptionOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateSubscriptionOrderRequest, clientIP, device string) (*response_models.CreateOrderResponse, error)
	HandleNotification(ctx context.Context, params map[string]string) error
	GetOrderStatus(ctx context.Context, userID uuid.UUID, outTradeNo string) (*response_models.OrderStatusResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*response_models.OrderListResponse, error)
}

type PaymentService struct {
	gateway       *zpay.Client
	orderRepo     repositories.OrderRepository
	membershipSvc MembershipServiceInterface
}

func NewPaymentService(gateway *zpay.Client, orderRepo repositories.OrderRepository, membershipSvc MembershipServiceInterface) PaymentServiceInterface {
	return &PaymentService{
		gateway:       gateway,
		orderRepo:     orderRepo,
		membershipSvc: membershipSvc,
	}
}

// CreateSubscriptionOrder persists a pending order for the chosen plan and
// asks the gateway for a payment artifact. The pending row is written before
// the gateway call so a notification arriving unusually fast still finds
// its order.
func (p *PaymentService) CreateSubscriptionOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateSubscriptionOrderRequest, clientIP, device string) (*response_models.CreateOrderResponse, error) {
	plan, ok := PlanByType(req.SubscriptionType)
	if !ok {
		return nil, utils.ErrPlanNotFound
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = "alipay"
	}

	order := &db_models.Order{
		OutTradeNo:       utils.GenerateOrderNumber(),
		UserID:           userID,
		Name:             plan.Name,
		Amount:           plan.Price,
		PaymentType:      paymentType,
		Status:           db_models.OrderStatusPending,
		OrderType:        db_models.OrderTypeSubscription,
		SubscriptionType: plan.Type,
		DurationDays:     plan.DurationDays,
		ClientIP:         clientIP,
		Device:           device,
	}

	err := p.orderRepo.Create(ctx, order)
	if errors.Is(err, utils.ErrDuplicateOrderNumber) {
		// same-second collision on the random suffix; one retry is enough
		order.OutTradeNo = utils.GenerateOrderNumber()
		err = p.orderRepo.Create(ctx, order)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	artifact, err := p.gateway.CreatePayment(ctx, zpay.CreatePaymentRequest{
		OutTradeNo:  order.OutTradeNo,
		PaymentType: paymentType,
		Name:        plan.Name,
		Amount:      plan.Price,
		ClientIP:    clientIP,
		Device:      device,
	})
	if err != nil {
		if errors.Is(err, utils.ErrGatewayRejected) {
			if markErr := p.orderRepo.MarkFailed(ctx, order.OutTradeNo); markErr != nil {
				log.Printf("mark order %s failed: %v", order.OutTradeNo, markErr)
			}
		} else {
			// a transport error is ambiguous: the provider may have created
			// the payment and will still notify, so the order stays pending
			// and the callback can settle it
			log.Printf("gateway unreachable for %s, order left pending: %v", order.OutTradeNo, err)
		}
		return nil, err
	}

	if err := p.orderRepo.UpdatePaymentInfo(ctx, order.OutTradeNo, artifact.PayURL, artifact.QRCode, artifact.TradeNo); err != nil {
		// artifact already exists gateway-side; losing the cached copy is
		// not worth failing the purchase
		log.Printf("update payment info for %s: %v", order.OutTradeNo, err)
	}

	return &response_models.CreateOrderResponse{
		OutTradeNo:       order.OutTradeNo,
		SubscriptionType: plan.Type,
		Name:             plan.Name,
		Amount:           plan.Price,
		DurationDays:     plan.DurationDays,
		ArtifactKind:     response_models.PaymentArtifactKind(artifact.Kind),
		QRCode:           artifact.QRCode,
		PayURL:           artifact.PayURL,
		Status:           string(db_models.OrderStatusPending),
		Mock:             artifact.Mock,
	}, nil
}

// paidStatuses are the trade_status values the gateway uses for a settled
// payment, compared case-insensitively.
var paidStatuses = map[string]bool{
	"SUCCESS":       true,
	"TRADE_SUCCESS": true,
	"PAID":          true,
}

// HandleNotification processes one asynchronous gateway callback. A nil
// return means the controller should answer the literal "success" body —
// including idempotent no-ops on already-paid orders and non-success trade
// statuses, both of which must not be re-delivered.
func (p *PaymentService) HandleNotification(ctx context.Context, params map[string]string) error {
	notification, err := p.gateway.VerifyNotification(params)
	if err != nil {
		log.Printf("rejected payment notification: %v", err)
		return err
	}

	if !paidStatuses[strings.ToUpper(notification.TradeStatus)] {
		// not a settlement; acknowledge so the gateway stops retrying
		log.Printf("ignoring notification for %s with trade_status=%s",
			notification.OutTradeNo, notification.TradeStatus)
		return nil
	}

	rawNotify, _ := json.Marshal(params)
	order, err := p.orderRepo.TransitionToPaid(ctx, notification.OutTradeNo, notification.Amount, notification.TradeNo, datatypes.JSON(rawNotify))
	if errors.Is(err, utils.ErrOrderAlreadyPaid) {
		log.Printf("duplicate notification for %s, already paid", notification.OutTradeNo)
		return nil
	}
	if err != nil {
		log.Printf("notification for %s not applied: %v", notification.OutTradeNo, err)
		return err
	}

	log.Printf("order %s paid (trade_no=%s)", order.OutTradeNo, order.TradeNo)

	if order.OrderType == db_models.OrderTypeSubscription {
		if _, err := p.membershipSvc.ApplyPaidOrder(ctx, order); err != nil {
			// the order is paid; surfacing an error here would make the
			// gateway retry against an already-consumed transition
			log.Printf("membership update for order %s failed: %v", order.OutTradeNo, err)
		}
	}
	return nil
}

// GetOrderStatus is the manual "check payment" fallback: it reads our own
// record and never re-contacts the provider, which pushes status via the
// callback.
func (p *PaymentService) GetOrderStatus(ctx context.Context, userID uuid.UUID, outTradeNo string) (*response_models.OrderStatusResponse, error) {
	order, err := p.orderRepo.GetByOrderNumber(ctx, outTradeNo)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, utils.ErrOrderForbidden
	}
	return orderToStatusResponse(order), nil
}

func (p *PaymentService) ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*response_models.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, err := p.orderRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	total, err := p.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.OrderListResponse{
		Orders: make([]response_models.OrderStatusResponse, 0, len(orders)),
		Page:   page,
		Limit:  limit,
		Total:  int(total),
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, *orderToStatusResponse(&orders[i]))
	}
	return resp, nil
}

func orderToStatusResponse(order *db_models.Order) *response_models.OrderStatusResponse {
	resp := &response_models.OrderStatusResponse{
		OutTradeNo:  order.OutTradeNo,
		Status:      string(order.Status),
		Name:        order.Name,
		Amount:      order.Amount,
		PaymentType: order.PaymentType,
		CreatedAt:   utils.FormatRFC3339CST(utils.FromUnixSecondsCST(order.CreatedAt)),
		QRCode:      order.QRCode,
		PayURL:      order.PayURL,
	}
	if order.PaidAt != nil {
		resp.PaidAt = utils.FormatRFC3339CST(utils.FromUnixSecondsCST(*order.PaidAt))
	}
	return resp
}
