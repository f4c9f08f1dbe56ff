package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type CheckinController struct {
	checkinService services.CheckinServiceInterface
}

func NewCheckinController(checkinService services.CheckinServiceInterface) *CheckinController {
	return &CheckinController{checkinService: checkinService}
}

// SubmitCheckin godoc
// @Summary Submit a daily check-in
// @Description Create or replace the authenticated user's check-in for a journey and date, and update their streak
// @Tags Checkin
// @Accept json
// @Produce json
// @Param request body request_models.SubmitCheckinRequest true "Journey ID, date (YYYY-MM-DD), per-dimension effort levels, optional idempotency key"
// @Success 200 {object} response_models.CheckinResult
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checkins [post]
func (cc *CheckinController) SubmitCheckin(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := cc.checkinService.SubmitCheckin(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Check-in saved")
}

// ListCheckins godoc
// @Summary List check-ins
// @Description Fetch the authenticated user's check-ins for a journey, optionally bounded by a date range
// @Tags Checkin
// @Produce json
// @Param journeyId query string true "Journey ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} response_models.CheckinResponse
// @Security BearerAuth
// @Router /checkins [get]
func (cc *CheckinController) ListCheckins(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var q request_models.ListCheckinsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "journeyId is required")
		return
	}

	checkins, err := cc.checkinService.ListCheckins(c.Request.Context(), accountID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkins, "Check-ins fetched successfully")
}

// authenticatedUserID reads the user id the JWT middleware attached.
func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}
