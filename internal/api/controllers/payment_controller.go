package controllers

import (
	"net/http"
	"strings"

	"herhzzz/internal/models/request_models"
	"herhzzz/internal/services"
	"herhzzz/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateSubscriptionOrder godoc
// @Summary Create a QR payment order for a subscription plan
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionOrderRequest true "Subscription order payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/subscriptions/orders [post]
func (p *PaymentController) CreateSubscriptionOrder(c *gin.Context) {
	var request request_models.CreateSubscriptionOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in to subscribe")
		return
	}

	order, err := p.paymentService.CreateSubscriptionOrder(
		c.Request.Context(), userID, request, c.ClientIP(), detectDevice(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created")
}

// Notify is the gateway's asynchronous payment callback. The response body
// is part of the wire contract: the literal text "success" acknowledges
// processing (including idempotent no-ops), anything else makes the
// provider redeliver.
func (p *PaymentController) Notify(c *gin.Context) {
	params := map[string]string{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	if c.Request.Method == http.MethodPost {
		if err := c.Request.ParseForm(); err == nil {
			for k, v := range c.Request.PostForm {
				if len(v) > 0 {
					params[k] = v[0]
				}
			}
		}
	}

	if err := p.paymentService.HandleNotification(c.Request.Context(), params); err != nil {
		c.String(http.StatusOK, "fail")
		return
	}
	c.String(http.StatusOK, "success")
}

// Pricing godoc
// @Summary List the subscription plan catalog
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/subscription/pricing [get]
func (p *PaymentController) Pricing(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"pricing":  services.Plans(),
		"currency": "CNY",
	}, "")
}

func detectDevice(c *gin.Context) string {
	ua := strings.ToLower(c.GetHeader("User-Agent"))
	for _, keyword := range []string{"mobile", "android", "iphone"} {
		if strings.Contains(ua, keyword) {
			return "mobile"
		}
	}
	return "pc"
}
