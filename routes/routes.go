package routes

import (
	"net/http"
	"time"

	"carebridge/handlers"
	"carebridge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp", hb.RequestOTPHandler)
		api.POST("/login", hb.VerifyOTPHandler)
		api.POST("/provider-login", hb.ProviderLoginHandler)

		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/record", hb.GetAuthRecordHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers the public marketplace endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/categories", hb.ListCategoriesHandler)
		api.GET("/cities", hb.ListCitiesHandler)
		api.GET("/nurses", hb.ListNursesHandler)
		api.GET("/nurses/:id", hb.GetNurseHandler)
	}
}

// RegisterUserRoutes registers the logged-in user's data endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/patients", hb.ListPatientsHandler)
		api.GET("/addresses", hb.ListAddressesHandler)
		api.GET("/coupons", hb.ListCouponsHandler)
		api.GET("/health-records", hb.ListHealthRecordsHandler)
		api.GET("/reports", hb.ListReportsHandler)
	}
}

// RegisterOrderRoutes registers order listing and detail endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.ListOrdersHandler)
		api.GET("/:id", hb.GetOrderHandler)
		api.POST("/:id/cancel", hb.CancelOrderHandler)
	}
}

// RegisterBookingRoutes sets up the booking flow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/session", hb.InitiateBookingHandler)
		api.GET("/session/:sessionID", hb.GetBookingHandler)
		api.PUT("/session/:sessionID", hb.UpdateBookingHandler)
		api.POST("/session/:sessionID/payment", hb.RequestPaymentHandler)
		api.POST("/session/:sessionID/payment/confirm", hb.ConfirmPaymentHandler)
		api.DELETE("/session/:sessionID/payment", hb.CancelPaymentHandler)
		api.DELETE("/session/:sessionID", hb.CancelBookingHandler)
	}
}

// RegisterCertificationRoutes sets up the certification wizard endpoints.
func RegisterCertificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/certification")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/session", hb.StartCertificationHandler)
		api.GET("/session/:sessionID", hb.GetCertificationHandler)
		api.POST("/session/:sessionID/role", hb.ChooseRoleHandler)
		api.PUT("/session/:sessionID/profile", hb.UpdateCertProfileHandler)
		api.POST("/session/:sessionID/profile/submit", hb.SubmitCertProfileHandler)
		api.POST("/session/:sessionID/certificates", hb.AttachCertificateHandler)
		api.POST("/session/:sessionID/liveness", hb.AdvanceToLivenessHandler)
		api.POST("/session/:sessionID/liveness/verify", hb.RunFaceVerificationHandler)
		api.DELETE("/session/:sessionID", hb.FinishCertificationHandler)
	}
}

// RegisterWorkbenchRoutes sets up the provider workbench endpoints.
func RegisterWorkbenchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workbench")
	{
		api.Use(middleware.JWTAuthProviderMiddleware())
		api.GET("/tasks", hb.TaskBoardHandler)
		api.POST("/tasks/:orderID/open", hb.OpenTaskHandler)
		api.POST("/tasks/:orderID/grab", hb.GrabTaskHandler)

		api.GET("/exception-reasons", hb.ListExceptionReasonsHandler)
		api.POST("/completion/session", hb.StartCompletionHandler)
		api.GET("/completion/session/:sessionID", hb.GetCompletionHandler)
		api.POST("/completion/session/:sessionID/verify", hb.SubmitVerificationCodeHandler)
		api.PUT("/completion/session/:sessionID/record", hb.UpdateRecordHandler)
		api.POST("/completion/session/:sessionID/photos", hb.AddSitePhotosHandler)
		api.DELETE("/completion/session/:sessionID/photos", hb.RemoveSitePhotoHandler)
		api.POST("/completion/session/:sessionID/sign", hb.AdvanceToSignHandler)
		api.POST("/completion/session/:sessionID/sign/events", hb.ApplyPointerEventsHandler)
		api.DELETE("/completion/session/:sessionID/sign", hb.ClearSignatureHandler)
		api.POST("/completion/session/:sessionID/sign/confirm", hb.ConfirmSignatureHandler)
		api.POST("/completion/session/:sessionID/submit", hb.SubmitCompletionHandler)
		api.POST("/completion/session/:sessionID/exception", hb.ReportExceptionHandler)
	}
}

// RegisterAdvisorRoutes registers the smart advisor endpoints.
func RegisterAdvisorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advisor")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/ask", hb.AskAdvisorHandler)
		api.DELETE("/context", hb.ClearAdvisorContextHandler)
	}
}

// RegisterStorageRoutes registers the image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/images", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CareBridge"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCertificationRoutes(r, hb)
	RegisterWorkbenchRoutes(r, hb)
	RegisterAdvisorRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
