// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"skybot/internal/http/handlers"
	"skybot/internal/http/middleware"
	"skybot/internal/modules/booking"
	"skybot/internal/modules/dialogue"
	"skybot/internal/modules/flights"
	"skybot/internal/modules/history"
	"skybot/internal/modules/notification"
	"skybot/internal/modules/payment"
)

type RouterDeps struct {
	Engine        *dialogue.Service
	Flights       *flights.Service
	Bookings      *booking.Service
	Payments      *payment.Service
	Notifications *notification.Service
	History       *history.Store
	DB            *pgxpool.Pool
	Redis         *redis.Client
	CORSOrigins   []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	chatHandler := handlers.NewChatHandler(deps.Engine, deps.History)
	r.POST("/api/bot/message", chatHandler.Message)

	wsHandler := handlers.NewWSHandler(deps.Engine, deps.History, deps.CORSOrigins)
	r.GET("/ws/chat", wsHandler.Serve)

	flightHandler := handlers.NewFlightHandler(deps.Flights)
	r.POST("/api/flights/search", flightHandler.Search)
	r.GET("/api/flights/status", flightHandler.Status)

	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	r.POST("/api/flights/book", bookingHandler.Create)
	r.GET("/api/flights/book", bookingHandler.List)
	r.GET("/api/bookings/:id/ticket", bookingHandler.Ticket)

	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	r.POST("/api/payments/process", paymentHandler.Process)

	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)
	r.POST("/api/notifications", notificationHandler.Send)
	r.GET("/api/notifications", notificationHandler.List)
	r.POST("/api/notifications/email", notificationHandler.SendEmail)

	databaseHandler := handlers.NewDatabaseHandler(deps.DB, deps.Redis)
	r.GET("/api/database", databaseHandler.Status)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
