package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rioserver/internal/models"
	"rioserver/internal/repositories/interfaces"
	"rioserver/internal/utils"
	"rioserver/pkg/logger"
)

const listLimit = 50

type AdminHandler struct {
	repo interfaces.SubmissionRepository
	log  *logger.Logger
}

func NewAdminHandler(repo interfaces.SubmissionRepository, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		repo: repo,
		log:  log,
	}
}

// ListSubmissions returns the newest submissions of one form type.
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	formType, err := models.ParseFormType(c.Query("formType"))
	if err != nil {
		utils.BadRequestResponse(c, "formType query param must be 'flight' or 'logistics'")
		return
	}

	submissions, err := h.repo.ListRecent(c.Request.Context(), formType, listLimit)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch submissions")
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.OK(c, gin.H{
		"formType":    formType,
		"count":       len(submissions),
		"submissions": submissions,
	})
}

// GetSubmission returns one submission by record id.
func (h *AdminHandler) GetSubmission(c *gin.Context) {
	formType, err := models.ParseFormType(c.Param("formType"))
	if err != nil {
		utils.BadRequestResponse(c, "formType must be 'flight' or 'logistics'")
		return
	}

	id := c.Param("id")
	if id == "" {
		utils.BadRequestResponse(c, "id is required")
		return
	}

	submission, err := h.repo.GetByID(c.Request.Context(), formType, id)
	if err != nil {
		if utils.IsValidation(err) {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		if errors.Is(err, interfaces.ErrSubmissionNotFound) {
			utils.NotFoundResponse(c, "Submission not found")
			return
		}
		h.log.WithError(err).Error("failed to fetch submission")
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.OK(c, gin.H{"submission": submission})
}
