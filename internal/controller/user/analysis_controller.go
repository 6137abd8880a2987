package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/controller"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/middleware"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/rs/zerolog/log"
)

// 5MB upload cap, same limit the frontend enforces.
const maxCvSizeBytes = 5 * 1024 * 1024

type AnalysisController struct {
	analysisSvc service.AnalysisService
}

func NewAnalysisController(analysisSvc service.AnalysisService) *AnalysisController {
	return &AnalysisController{analysisSvc: analysisSvc}
}

// SubmitJob godoc
// @Summary Submit a CV for analysis
// @Description Accepts a multipart CV upload plus an optional job description and returns a job id for polling
// @Tags analysis
// @Accept mpfd
// @Produce json
// @Param cv formData file true "CV file"
// @Param jd_text formData string false "Job description text"
// @Success 202 {object} dto.AnalysisJobDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 409 {object} dto.ErrorResponse "Onboarding incomplete"
// @Router /analysis/jobs [post]
func (ctrl *AnalysisController) SubmitJob(c *gin.Context) {
	input := service.SubmitInput{JdText: c.PostForm("jd_text")}

	fileHeader, err := c.FormFile("cv")
	if err == nil {
		if fileHeader.Size > maxCvSizeBytes {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "CV file is too large (max 5MB)"})
			return
		}
		file, openErr := fileHeader.Open()
		if openErr != nil {
			log.Error().Err(openErr).Msg("Failed to open uploaded CV")
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read uploaded file"})
			return
		}
		defer file.Close()
		input.FileName = fileHeader.Filename
		input.File = file
		input.Size = fileHeader.Size
	}

	job, err := ctrl.analysisSvc.Submit(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, job)
}

// ListJobs godoc
// @Summary List the user's analysis jobs
// @Description Summary projections ordered newest-first, sized for polling
// @Tags analysis
// @Produce json
// @Success 200 {array} dto.AnalysisJobSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/jobs [get]
func (ctrl *AnalysisController) ListJobs(c *gin.Context) {
	jobs, err := ctrl.analysisSvc.ListJobs(middleware.UserID(c))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get full detail of one analysis job
// @Tags analysis
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} dto.AnalysisJobDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /analysis/jobs/{job_id} [get]
func (ctrl *AnalysisController) GetJob(c *gin.Context) {
	job, err := ctrl.analysisSvc.GetJob(c.Param("job_id"), middleware.UserID(c))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
