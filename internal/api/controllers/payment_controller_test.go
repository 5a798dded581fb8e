package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"herhzzz/internal/models/request_models"
	"herhzzz/internal/models/response_models"
	"herhzzz/pkg/testutils"
	"herhzzz/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	m.Run()
}

type stubPaymentService struct {
	notifyErr    error
	notifyParams map[string]string
	createResp   *response_models.CreateOrderResponse
	createErr    error
}

func (s *stubPaymentService) CreateSubscriptionOrder(_ context.Context, _ uuid.UUID, _ request_models.CreateSubscriptionOrderRequest, _, _ string) (*response_models.CreateOrderResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubPaymentService) HandleNotification(_ context.Context, params map[string]string) error {
	s.notifyParams = params
	return s.notifyErr
}

func (s *stubPaymentService) GetOrderStatus(_ context.Context, _ uuid.UUID, _ string) (*response_models.OrderStatusResponse, error) {
	return nil, utils.ErrOrderNotFound
}

func (s *stubPaymentService) ListOrders(_ context.Context, _ uuid.UUID, _, _ int) (*response_models.OrderListResponse, error) {
	return &response_models.OrderListResponse{}, nil
}

func setupPaymentRouter(svc *stubPaymentService) *gin.Engine {
	router := testutils.SetupTestRouter()
	controller := NewPaymentController(svc)
	router.GET("/notify_url", controller.Notify)
	router.POST("/notify_url", controller.Notify)
	router.GET("/api/subscription/pricing", controller.Pricing)
	router.POST("/api/subscriptions/orders", func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		controller.CreateSubscriptionOrder(c)
	})
	return router
}

func TestNotify_GetQueryParamsAcknowledged(t *testing.T) {
	svc := &stubPaymentService{}
	router := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/notify_url?pid=1001&out_trade_no=20250101-143022-ABC123&trade_status=TRADE_SUCCESS&money=99.99&sign=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", w.Body.String(), "the provider expects the literal success body")
	assert.Equal(t, "20250101-143022-ABC123", svc.notifyParams["out_trade_no"])
	assert.Equal(t, "99.99", svc.notifyParams["money"])
}

func TestNotify_PostFormParamsAcknowledged(t *testing.T) {
	svc := &stubPaymentService{}
	router := setupPaymentRouter(svc)

	form := url.Values{}
	form.Set("pid", "1001")
	form.Set("out_trade_no", "20250101-143022-ABC123")
	form.Set("trade_status", "TRADE_SUCCESS")
	form.Set("money", "29.99")
	form.Set("sign", "abc")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/notify_url", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", w.Body.String())
	assert.Equal(t, "29.99", svc.notifyParams["money"])
}

func TestNotify_RejectionAnswersFailWith200(t *testing.T) {
	svc := &stubPaymentService{notifyErr: utils.ErrSignatureInvalid}
	router := setupPaymentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notify_url?out_trade_no=x", nil)
	router.ServeHTTP(w, req)

	// rejections still answer HTTP 200; the body carries the verdict
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fail", w.Body.String())
}

func TestPricing(t *testing.T) {
	router := setupPaymentRouter(&stubPaymentService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/subscription/pricing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CNY", data["currency"])
	assert.Len(t, data["pricing"], 3)
}

func TestCreateSubscriptionOrder_ReturnsArtifact(t *testing.T) {
	svc := &stubPaymentService{createResp: &response_models.CreateOrderResponse{
		OutTradeNo:   "20250101-143022-ABC123",
		Amount:       decimal.RequireFromString("99.99"),
		ArtifactKind: response_models.ArtifactQRCode,
		QRCode:       "mock://pay/20250101-143022-ABC123?amount=99.99",
		Status:       "pending",
	}}
	router := setupPaymentRouter(svc)

	body, _ := json.Marshal(gin.H{"subscription_type": "yearly"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "20250101-143022-ABC123")
	assert.Contains(t, w.Body.String(), "qr_code")
}

func TestCreateSubscriptionOrder_InvalidPayload(t *testing.T) {
	router := setupPaymentRouter(&stubPaymentService{})

	body, _ := json.Marshal(gin.H{"subscription_type": "weekly"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSubscriptionOrder_GatewayDownIsBadGateway(t *testing.T) {
	svc := &stubPaymentService{createErr: utils.ErrGatewayUnavailable}
	router := setupPaymentRouter(svc)

	body, _ := json.Marshal(gin.H{"subscription_type": "yearly"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/subscriptions/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
