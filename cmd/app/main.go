package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"herhzzz/cmd/fx/account_fx"
	"herhzzz/cmd/fx/audio_fx"
	"herhzzz/cmd/fx/db_fx"
	"herhzzz/cmd/fx/membership_fx"
	"herhzzz/cmd/fx/order_fx"
	"herhzzz/cmd/fx/payment_fx"
	"herhzzz/internal/api/controllers"
	"herhzzz/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		order_fx.Module,
		membership_fx.Module,
		payment_fx.Module,
		audio_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	orderController *controllers.OrderController,
	membershipController *controllers.MembershipController,
	audioController *controllers.AudioController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, paymentController, orderController, membershipController, audioController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	orderController *controllers.OrderController,
	membershipController *controllers.MembershipController,
	audioController *controllers.AudioController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// gateway callback: unauthenticated, may arrive as GET or POST
	r.GET("/notify_url", paymentController.Notify)
	r.POST("/notify_url", paymentController.Notify)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	api := r.Group("/api")
	api.GET("/subscription/pricing", paymentController.Pricing)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/profile", accountController.Profile)
	authed.POST("/subscriptions/orders", paymentController.CreateSubscriptionOrder)
	authed.GET("/orders", orderController.ListOrders)
	authed.GET("/orders/:out_trade_no", orderController.GetOrderStatus)
	authed.GET("/membership", membershipController.GetMembership)
	authed.GET("/audio/access", audioController.ListAccess)
	authed.GET("/audio/:name/access", audioController.CheckAccess)
}
