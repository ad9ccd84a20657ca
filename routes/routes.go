package routes

import (
	"github.com/gin-gonic/gin"

	"rioserver/internal/handlers"
)

// SetupIntakeRoutes registers the public form intake endpoints.
func SetupIntakeRoutes(r *gin.Engine, h *handlers.SubmissionHandler) {
	api := r.Group("/api")
	{
		api.POST("/send-email", h.SendEmail)
		api.POST("/test-whatsapp", h.TestWhatsApp)
		api.POST("/submit-form", h.SubmitFormRetired)
	}
}

// SetupAdminRoutes registers the read-only submission review endpoints.
func SetupAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	admin := r.Group("/admin")
	{
		admin.GET("/submissions", h.ListSubmissions)
		admin.GET("/submissions/:formType/:id", h.GetSubmission)
	}
}
