package routes

import (
	"net/http"
	"time"

	"medicare/config"
	"medicare/handlers"
	"medicare/middleware"
	"medicare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPublicRoutes registers endpoints that need no token.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MediCare is sitting")
	})
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/jwt", hb.Auth.IssueTokenHandler)
	r.POST("/users", hb.User.RegisterUserHandler)
	r.GET("/districts", hb.Location.DistrictsHandler)
	r.GET("/upazilas", hb.Location.UpazilasHandler)
	r.GET("/allTests", hb.Catalog.ListActiveTestsHandler)
	r.GET("/test/:id", hb.Catalog.GetTestHandler)
	r.GET("/activeBanner", hb.Banner.ActiveBannerHandler)
}

// RegisterMemberRoutes registers endpoints for any signed-in user. Handlers
// compare the principal against the email they serve.
func RegisterMemberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	member := r.Group("")
	member.Use(middleware.VerifyToken(hb.Tokens))
	{
		member.GET("/user/admin/:email", hb.User.IsAdminHandler)
		member.GET("/userProfile", hb.User.ProfileHandler)
		member.PATCH("/editUserProfile/:id", hb.User.EditProfileHandler)

		member.POST("/upcomingAppointments", hb.Appointment.BookHandler)
		member.GET("/upcomingAppointments", hb.Appointment.ListUpcomingHandler)
		member.PATCH("/upcomingAppointment/:id", hb.Appointment.CancelHandler)
		member.GET("/testResults/:email", hb.Appointment.ResultsHandler)
		member.GET("/appointmentSummary/:email", hb.Appointment.SummaryHandler)
		member.PATCH("/updateSlot/:id/decrementSlot", hb.Catalog.DecrementSlotHandler)

		member.POST("/create-payment-intent", hb.Payment.CreatePaymentIntentHandler)
		member.POST("/payments", hb.Payment.RecordPaymentHandler)
		member.GET("/payments/:email", hb.Payment.HistoryHandler)
	}
}

// RegisterAdminRoutes registers endpoints for admins only.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("")
	adminGroup.Use(middleware.VerifyToken(hb.Tokens), middleware.VerifyAdmin(hb.Roles))
	{
		adminGroup.GET("/users", hb.User.GetAllUsersHandler)
		adminGroup.GET("/user/:id", hb.User.GetUserByIDHandler)
		adminGroup.DELETE("/users/:id", hb.User.DeleteUserHandler)
		adminGroup.PATCH("/updateUserRole/:id", hb.User.UpdateRoleHandler)
		adminGroup.PATCH("/updateUserStatus/:id", hb.User.UpdateStatusHandler)

		adminGroup.GET("/tests", hb.Catalog.ListAllTestsHandler)
		adminGroup.POST("/tests", hb.Catalog.CreateTestHandler)
		adminGroup.PATCH("/tests/:id", hb.Catalog.UpdateTestHandler)
		adminGroup.DELETE("/tests/:id", hb.Catalog.DeleteTestHandler)

		adminGroup.GET("/appointments", hb.Appointment.ListAllHandler)
		adminGroup.PATCH("/updateReportStatus/:id", hb.Appointment.DeliverReportHandler)

		adminGroup.GET("/banners", hb.Banner.ListBannersHandler)
		adminGroup.POST("/banners", hb.Banner.CreateBannerHandler)
		adminGroup.DELETE("/banners/:id", hb.Banner.DeleteBannerHandler)
		adminGroup.PATCH("/setActiveBanner/:id", hb.Banner.SetActiveBannerHandler)

		adminGroup.GET("/payments", hb.Payment.ListAllHandler)
		adminGroup.GET("/admin-stats", hb.Admin.StatsHandler)
		adminGroup.GET("/booking-stats", hb.Admin.BookingStatsHandler)
		adminGroup.POST("/upload/:folder", hb.Storage.UploadFileHandler)
	}
}

// NewRouter builds the engine with global middleware and every route.
func NewRouter(hb *handlers.HandlerBundle) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	RegisterRoutes(r, hb)
	return r
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := config.AppConfig.Origins()
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	RegisterPublicRoutes(r, hb)
	RegisterMemberRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	r.NoRoute(utils.NotFoundHandler)
}
