package controllers

import (
	"net/http"
	"strconv"

	"herhzzz/internal/services"
	"herhzzz/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct {
	paymentService services.PaymentServiceInterface
}

func NewOrderController(paymentService services.PaymentServiceInterface) *OrderController {
	return &OrderController{
		paymentService: paymentService,
	}
}

// GetOrderStatus godoc
// @Summary Check the status of one order (manual payment check)
// @Tags Orders
// @Produce json
// @Param out_trade_no path string true "Merchant order number"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/orders/{out_trade_no} [get]
func (o *OrderController) GetOrderStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in")
		return
	}

	status, err := o.paymentService.GetOrderStatus(c.Request.Context(), userID, c.Param("out_trade_no"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "")
}

// ListOrders godoc
// @Summary List the caller's orders, newest first
// @Tags Orders
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Please log in")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, err := o.paymentService.ListOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "")
}
