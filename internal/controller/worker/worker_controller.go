// Package worker holds the analyzer-facing endpoints: the file fetch and the
// result callback. Both are guarded by the shared callback secret instead of
// user authentication.
package worker

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/controller"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/rs/zerolog/log"
)

const secretHeader = "X-Analysis-Secret"

type WorkerController struct {
	analysisSvc service.AnalysisService
}

func NewWorkerController(analysisSvc service.AnalysisService) *WorkerController {
	return &WorkerController{analysisSvc: analysisSvc}
}

// ServeSourceFile godoc
// @Summary Stream the originally uploaded CV to the analyzer
// @Tags internal
// @Produce octet-stream
// @Param job_id path string true "Job ID"
// @Param X-Analysis-Secret header string false "Shared callback secret"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /internal/analysis/jobs/{job_id}/cv [get]
func (ctrl *WorkerController) ServeSourceFile(c *gin.Context) {
	path, fileName, err := ctrl.analysisSvc.SourceFilePath(c.Param("job_id"), c.GetHeader(secretHeader))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.FileAttachment(path, fileName)
}

// Callback godoc
// @Summary Apply the analyzer's result to a processing job
// @Tags internal
// @Accept json
// @Produce json
// @Param X-Analysis-Secret header string false "Shared callback secret"
// @Param body body dto.CallbackPayload true "Analysis result"
// @Success 200 {object} dto.AnalysisJobDTO
// @Failure 400 {object} dto.ErrorResponse "Payload shape mismatch, with violated fields"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Job already terminal"
// @Router /internal/analysis/callback [post]
func (ctrl *WorkerController) Callback(c *gin.Context) {
	var payload dto.CallbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Msg("Failed to bind analyzer callback")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed callback body", Code: "INVALID_PAYLOAD"})
		return
	}

	job, err := ctrl.analysisSvc.ApplyCallback(payload, c.GetHeader(secretHeader))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
