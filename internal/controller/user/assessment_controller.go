package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/controller"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/middleware"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	assessmentSvc service.AssessmentService
}

func NewAssessmentController(assessmentSvc service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentSvc: assessmentSvc}
}

// ListQuestions godoc
// @Summary List assessment questions
// @Description Returns the fixed 24-question bank in display order
// @Tags assessment
// @Produce json
// @Success 200 {array} dto.QuestionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/questions [get]
func (ctrl *AssessmentController) ListQuestions(c *gin.Context) {
	questions, err := ctrl.assessmentSvc.ListQuestions()
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// StartAttempt godoc
// @Summary Start or resume an assessment attempt
// @Description Resumes the latest incomplete attempt, or creates a new one when force_new is set
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body dto.StartAttemptRequest false "Resume behaviour"
// @Success 200 {object} dto.AttemptDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/attempts [post]
func (ctrl *AssessmentController) StartAttempt(c *gin.Context) {
	var req dto.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := ctrl.assessmentSvc.StartOrResumeAttempt(middleware.UserID(c), req.ForceNew)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	status := http.StatusCreated
	if attempt.Resumed {
		status = http.StatusOK
	}
	c.JSON(status, attempt)
}

// DiscardAttempt godoc
// @Summary Discard the current incomplete attempt
// @Description Deletes the latest incomplete attempt and its answers so the user can restart
// @Tags assessment
// @Success 204 "No Content"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessment/attempts/current [delete]
func (ctrl *AssessmentController) DiscardAttempt(c *gin.Context) {
	if err := ctrl.assessmentSvc.DiscardIncompleteAttempt(middleware.UserID(c)); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveAnswer godoc
// @Summary Save one answer within an attempt
// @Description Upserts the Likert value for a question; re-answering overwrites the previous value
// @Tags assessment
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param body body dto.SaveAnswerRequest true "Answer"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Router /assessment/attempts/{attempt_id}/answers [put]
func (ctrl *AssessmentController) SaveAnswer(c *gin.Context) {
	attemptID, ok := attemptIDParam(c)
	if !ok {
		return
	}
	var req dto.SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SaveAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.assessmentSvc.SaveAnswer(attemptID, middleware.UserID(c), req); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteAttempt godoc
// @Summary Complete and score an attempt
// @Description Computes per-dimension subtotals, total score and readiness band; requires every question answered
// @Tags assessment
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already completed or answers missing"
// @Router /assessment/attempts/{attempt_id}/complete [post]
func (ctrl *AssessmentController) CompleteAttempt(c *gin.Context) {
	attemptID, ok := attemptIDParam(c)
	if !ok {
		return
	}
	result, err := ctrl.assessmentSvc.CompleteAttempt(attemptID, middleware.UserID(c))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary Get the owner's view of a completed attempt
// @Tags assessment
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Attempt not completed yet"
// @Router /assessment/attempts/{attempt_id}/result [get]
func (ctrl *AssessmentController) GetResult(c *gin.Context) {
	attemptID, ok := attemptIDParam(c)
	if !ok {
		return
	}
	result, err := ctrl.assessmentSvc.GetResult(attemptID, middleware.UserID(c))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPublicResult godoc
// @Summary Get the redacted shareable result
// @Description Public share-token lookup; no authentication
// @Tags assessment
// @Produce json
// @Param share_token path string true "Share token"
// @Success 200 {object} dto.PublicResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessment/results/{share_token} [get]
func (ctrl *AssessmentController) GetPublicResult(c *gin.Context) {
	result, err := ctrl.assessmentSvc.GetPublicResult(c.Param("share_token"))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func attemptIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("attempt_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attempt ID format"})
		return 0, false
	}
	return uint(id), true
}
