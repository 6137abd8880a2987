package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/controller"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/middleware"
	"github.com/launchpadhq/launchpad-api/internal/service"
)

type ProfileController struct {
	profileSvc service.ProfileService
}

func NewProfileController(profileSvc service.ProfileService) *ProfileController {
	return &ProfileController{profileSvc: profileSvc}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /me [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctrl.profileSvc.GetProfile(middleware.UserID(c))
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update profile fields, including the onboarding flag
// @Tags profile
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /me [put]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	profile, err := ctrl.profileSvc.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
