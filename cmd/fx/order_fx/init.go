package order_fx

import (
	"herhzzz/internal/api/controllers"
	"herhzzz/internal/repositories"
	"herhzzz/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderController)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderController(paymentService services.PaymentServiceInterface) *controllers.OrderController {
	return controllers.NewOrderController(paymentService)
}
