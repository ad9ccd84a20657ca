package handlers

import (
	"github.com/gin-gonic/gin"

	"rioserver/internal/models"
	"rioserver/internal/services"
	"rioserver/internal/utils"
	"rioserver/pkg/logger"
)

type SubmissionHandler struct {
	intake *services.IntakeService
	log    *logger.Logger
}

func NewSubmissionHandler(intake *services.IntakeService, log *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		intake: intake,
		log:    log,
	}
}

// SendEmail is the intake entry point: it validates the tagged union
// before any side effect, runs the fan-out and shapes the status links.
func (h *SubmissionHandler) SendEmail(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body: "+err.Error())
		return
	}

	if req.FormType == "" || len(req.Data) == 0 || string(req.Data) == "null" {
		utils.BadRequestResponse(c, "formType and data are required")
		return
	}

	formType, err := models.ParseFormType(req.FormType)
	if err != nil {
		utils.BadRequestResponse(c, "formType must be 'flight' or 'logistics'")
		return
	}

	payload, err := models.DecodePayload(formType, req.Data)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	result, err := h.intake.Submit(c.Request.Context(), formType, payload, req.Attachments)
	if err != nil {
		if utils.IsValidation(err) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	base := utils.RequestBaseURL(c)
	dashboardPath := "/admin/submissions?formType=" + string(formType)

	response := gin.H{
		"message":              "Emails sent",
		"emailStatus":          result.EmailStatus,
		"whatsappAdminStatus":  result.WhatsAppAdminStatus,
		"whatsappClientStatus": result.WhatsAppClientStatus,
		"dashboardPath":        dashboardPath,
		"dashboardApiUrl":      base + dashboardPath,
	}
	if result.RecordID != "" {
		recordPath := "/admin/submissions/" + string(formType) + "/" + result.RecordID
		response["recordPath"] = recordPath
		response["recordApiUrl"] = base + recordPath
		response["recordId"] = result.RecordID
	}

	utils.OK(c, response)
}

// TestWhatsApp fires the configured test template at the admin number.
func (h *SubmissionHandler) TestWhatsApp(c *gin.Context) {
	message, err := h.intake.SendTestTemplate(c.Request.Context())
	if err != nil {
		if utils.IsValidation(err) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.OK(c, gin.H{"message": message})
}

// SubmitFormRetired tombstones the old intake route.
func (h *SubmissionHandler) SubmitFormRetired(c *gin.Context) {
	utils.GoneResponse(c, "Use /api/send-email")
}
