package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reserva-backend/controllers"
	"reserva-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances to routes.
func SetupRouter(
	bc *controllers.BookingController,
	cc *controllers.CustomerController,
	cal *controllers.CalendarController,
	dc *controllers.DashboardController,
	bill *controllers.BillingController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}

		// Visits are bookings with status visita; same lifecycle, own screen.
		visits := protected.Group("/visits")
		{
			visits.GET("", bc.GetVisits)
			visits.POST("", bc.CreateVisit)
		}

		customers := protected.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.POST("", cc.CreateCustomer)
			customers.GET("/:id", cc.GetCustomer)
			customers.PUT("/:id", cc.UpdateCustomer)
			customers.DELETE("/:id", cc.DeleteCustomer)
		}

		spaces := protected.Group("/spaces")
		{
			spaces.GET("", controllers.GetSpaces)
			spaces.POST("", controllers.CreateSpace)
			spaces.PUT("/:id", controllers.UpdateSpace)
			spaces.PATCH("/:id", controllers.UpdateSpace)
			spaces.DELETE("/:id", controllers.DeleteSpace)
		}

		responsibles := protected.Group("/responsibles")
		{
			responsibles.GET("", controllers.GetResponsibles)
			responsibles.POST("", controllers.CreateResponsible)
			responsibles.PUT("/:id", controllers.UpdateResponsible)
			responsibles.DELETE("/:id", controllers.DeleteResponsible)
		}

		calendar := protected.Group("/calendar")
		{
			// /day must be registered before /:year to keep gin happy with
			// the shared prefix
			calendar.GET("/day/:date", cal.GetDay)
			calendar.GET("/:year/:month", cal.GetMonth)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/kpis", dc.GetKPIs)
			dashboard.GET("/values", dc.GetValues)
		}

		plans := protected.Group("/plans")
		{
			plans.GET("", bill.GetPlans)
			plans.POST("", bill.CreatePlan)
			plans.PUT("/:id", bill.UpdatePlan)
			plans.DELETE("/:id", bill.DeletePlan)
		}

		subscriptions := protected.Group("/subscriptions")
		{
			subscriptions.GET("", bill.GetSubscriptions)
			subscriptions.POST("", bill.CreateSubscription)
			subscriptions.PUT("/:id", bill.UpdateSubscription)
			subscriptions.DELETE("/:id", bill.DeleteSubscription)
		}

		payments := protected.Group("/payments")
		{
			payments.GET("", bill.GetPayments)
			payments.POST("", bill.CreatePayment)
		}
	}

	return r
}
