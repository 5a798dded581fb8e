package payment_fx

import (
	"os"

	"herhzzz/internal/api/controllers"
	"herhzzz/internal/repositories"
	"herhzzz/internal/services"
	"herhzzz/internal/zpay"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideGatewayClient, providePaymentService, providePaymentController)

func provideGatewayClient() *zpay.Client {
	return zpay.NewClient(zpay.Config{
		MerchantID:  os.Getenv("ZPAY_MERCHANT_ID"),
		MerchantKey: os.Getenv("ZPAY_MERCHANT_KEY"),
		APIURL:      os.Getenv("ZPAY_API_URL"),
		NotifyURL:   os.Getenv("ZPAY_NOTIFY_URL"),
		ReturnURL:   os.Getenv("ZPAY_RETURN_URL"),
	})
}

func providePaymentService(
	gateway *zpay.Client,
	orderRepo repositories.OrderRepository,
	membershipService services.MembershipServiceInterface) services.PaymentServiceInterface {
	return services.NewPaymentService(gateway, orderRepo, membershipService)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
