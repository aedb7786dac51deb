package routes

import (
	"time"

	"itsourstudio/config"
	staffRepo "itsourstudio/database/repository/staff"
	"itsourstudio/handlers"
	"itsourstudio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/packages", handlers.ListPackages)
		bookingGroup.POST("/session", handlers.StartBookingSession)
		bookingGroup.GET("/session/:sessionID", handlers.GetBookingSession)
		bookingGroup.GET("/session/:sessionID/availability", handlers.GetAvailability)
		bookingGroup.PUT("/session/:sessionID/service", handlers.SelectService)
		bookingGroup.PUT("/session/:sessionID/details", handlers.SubmitDetails)
		bookingGroup.POST("/session/:sessionID/back", handlers.StepBack)
		bookingGroup.POST("/confirm", handlers.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", handlers.CancelBookingSession)
	}
}

// RegisterStorageRoutes sets up upload endpoints and static file serving.
func RegisterStorageRoutes(r *gin.Engine, cfg *config.Config) {
	storageGroup := r.Group("/api/storage")
	{
		storageGroup.POST("/upload/payment-proof", handlers.UploadPaymentProof)
		storageGroup.POST("/upload/gallery", handlers.UploadGalleryImage)
	}

	// Uploaded files are served back under their public prefixes.
	r.Static("/POP", cfg.UploadDir)
	r.Static("/gallery-uploads", cfg.GalleryDir)
}

// RegisterFeedbackRoutes sets up public review endpoints.
func RegisterFeedbackRoutes(r *gin.Engine) {
	feedbackGroup := r.Group("/api/feedback")
	{
		feedbackGroup.POST("", handlers.SubmitFeedback)
		feedbackGroup.GET("/testimonials", handlers.GetTestimonials)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints. Everything except
// login requires a valid staff token.
func RegisterAdminRoutes(r *gin.Engine, staff staffRepo.StaffRepository) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", handlers.StaffLogin)

		adminGroup.Use(middleware.JWTAuthStaffMiddleware(staff))
		adminGroup.GET("/bookings", handlers.ListBookings)
		adminGroup.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)
		adminGroup.DELETE("/bookings/:id", handlers.DeleteBooking)
		adminGroup.GET("/feedbacks", handlers.ListFeedback)
		adminGroup.PUT("/feedbacks/:id/visibility", handlers.SetFeedbackVisibility)
		adminGroup.DELETE("/feedbacks/:id", handlers.DeleteFeedback)
		adminGroup.GET("/staff", handlers.ListStaff)
		adminGroup.POST("/staff", handlers.CreateStaff)
		adminGroup.PUT("/staff/:id", handlers.UpdateStaff)
		adminGroup.DELETE("/staff/:id", handlers.DeleteStaff)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, staff staffRepo.StaffRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r)
	RegisterStorageRoutes(r, cfg)
	RegisterFeedbackRoutes(r)
	RegisterAdminRoutes(r, staff)
}
