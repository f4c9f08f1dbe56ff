package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{journeyService: journeyService}
}

// CreateJourney godoc
// @Summary Create a journey
// @Description Create a journey with its weighted dimensions; the creator becomes the owner member
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.CreateJourneyRequest true "Title, description, visibility, dimensions"
// @Success 201 {object} response_models.JourneyDetailResponse
// @Security BearerAuth
// @Router /journeys [post]
func (j *JourneyController) CreateJourney(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and dimensions are required")
		return
	}

	journey, err := j.journeyService.CreateJourney(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, journey, "Journey created successfully")
}

// ListJourneys godoc
// @Summary List journeys
// @Description Fetch a paginated list of active journeys visible to the authenticated user
// @Tags Journey
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Param memberOnly query bool false "Only journeys the user belongs to"
// @Success 200 {array} response_models.JourneyResponse
// @Security BearerAuth
// @Router /journeys [get]
func (j *JourneyController) ListJourneys(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}
	memberOnly := c.Query("memberOnly") == "true"

	journeys, total, err := j.journeyService.ListJourneys(c.Request.Context(), &accountID, page, pageSize, memberOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"items": journeys,
		"total": total,
	}, "Journeys fetched successfully")
}

// GetJourneyDetails godoc
// @Summary Get journey details by ID
// @Description Fetch a journey's dimensions, members and stats
// @Tags Journey
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} response_models.JourneyDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [get]
func (j *JourneyController) GetJourneyDetails(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	journey, err := j.journeyService.GetJourneyDetails(c.Request.Context(), &accountID, journeyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey details fetched successfully")
}

// JoinJourney godoc
// @Summary Join a journey
// @Description Join a public journey, or a private one with a valid invite token
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param request body request_models.JoinJourneyRequest false "Invite token for private journeys"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/join [post]
func (j *JourneyController) JoinJourney(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	var req request_models.JoinJourneyRequest
	_ = c.ShouldBindJSON(&req)

	if err := j.journeyService.JoinJourney(c.Request.Context(), accountID, journeyID, req.InviteToken); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Joined journey successfully")
}

// SendInvite godoc
// @Summary Invite someone to a journey
// @Description Owner-only: create an invite token for an email address, valid for 7 days
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param request body request_models.SendInviteRequest true "Invitee email"
// @Success 201 {object} response_models.InviteResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/invites [post]
func (j *JourneyController) SendInvite(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	var req request_models.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	invite, err := j.journeyService.SendInvite(c.Request.Context(), accountID, journeyID, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, invite, "Invite created successfully")
}

func journeyIDParam(c *gin.Context) (uuid.UUID, bool) {
	journeyID, err := uuid.Parse(c.Param("journeyId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid journey ID")
		return uuid.Nil, false
	}
	return journeyID, true
}
