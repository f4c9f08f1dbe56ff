package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vignesh-ravichandran/Crimson/internal/services"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetRadarData godoc
// @Summary Radar chart data
// @Description Average score per dimension for the authenticated user over a period
// @Tags Analytics
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response_models.RadarResponse
// @Security BearerAuth
// @Router /analytics/{journeyId}/radar [get]
func (a *AnalyticsController) GetRadarData(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	data, err := a.analyticsService.RadarData(c.Request.Context(), accountID, journeyID,
		c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, data, "Radar data fetched successfully")
}

// GetLineData godoc
// @Summary Line chart data
// @Description Daily total-score trend for the authenticated user over a period
// @Tags Analytics
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response_models.LineResponse
// @Security BearerAuth
// @Router /analytics/{journeyId}/line [get]
func (a *AnalyticsController) GetLineData(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	data, err := a.analyticsService.LineData(c.Request.Context(), accountID, journeyID,
		c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, data, "Line data fetched successfully")
}

// GetStackedBarData godoc
// @Summary Stacked bar chart data
// @Description Per-day score breakdown by dimension for the authenticated user over a period
// @Tags Analytics
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response_models.StackedBarResponse
// @Security BearerAuth
// @Router /analytics/{journeyId}/stacked-bar [get]
func (a *AnalyticsController) GetStackedBarData(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	data, err := a.analyticsService.StackedBarData(c.Request.Context(), accountID, journeyID,
		c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, data, "Stacked bar data fetched successfully")
}

// GetHeatmapData godoc
// @Summary Calendar heatmap data
// @Description Per-day totals for the authenticated user, one cell per calendar day
// @Tags Analytics
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response_models.HeatmapResponse
// @Security BearerAuth
// @Router /analytics/{journeyId}/heatmap [get]
func (a *AnalyticsController) GetHeatmapData(c *gin.Context) {
	accountID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	data, err := a.analyticsService.HeatmapData(c.Request.Context(), accountID, journeyID,
		c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, data, "Heatmap data fetched successfully")
}
