package routes

import (
	"gocamp/controllers"
	middlewares "gocamp/middleware"
	"gocamp/repository"
	"gocamp/services"
	"gocamp/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, gateway services.PaymentGateway, m *melody.Melody) {
	bookingRepo := repository.NewBookingRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	campsiteRepo := repository.NewCampsiteRepo(db)

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings:  bookingRepo,
		Payments:  paymentRepo,
		Campsites: campsiteRepo,
		Gateway:   gateway,
		Logger:    appLogger,
	})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		Payments: paymentRepo,
		Bookings: bookingRepo,
		Gateway:  gateway,
		Logger:   appLogger,
	})
	availabilityService := services.NewAvailabilityService(bookingRepo, campsiteRepo)
	sweepService := services.NewSweepService(bookingRepo, appLogger)

	bookingController := controllers.NewBookingController(bookingService, availabilityService, sweepService, redisCli, m)
	paymentController := controllers.NewPaymentController(paymentService)
	campsiteController := controllers.NewCampsiteController(campsiteRepo)

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)
	v1.GET("/booking/:id", bookingController.GetBookingDetail)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), bookingController.GetBookingHistory)
	v1.GET("/checkCampsite", bookingController.CheckAvailability)
	v1.POST("/statusSweep", middlewares.AuthMiddleware(), bookingController.RunStatusSweep)

	v1.POST("/payment/intent", middlewares.AuthMiddleware(), paymentController.CreateIntent)
	v1.POST("/payment/webhook", paymentController.HandleWebhook)

	v1.GET("/campsite/:id", campsiteController.GetCampsiteDetail)
	v1.GET("/unavailability", campsiteController.GetUnavailability)
	v1.POST("/unavailability", middlewares.AuthMiddleware(), campsiteController.CreateUnavailability)
	v1.DELETE("/unavailability/:id", middlewares.AuthMiddleware(), campsiteController.DeleteUnavailability)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
