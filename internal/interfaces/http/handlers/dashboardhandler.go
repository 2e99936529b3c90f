package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	dashboardapp "github.com/shelterhq/pawhaven/internal/application/dashboard"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// DashboardHandler handles dashboard aggregation endpoints.
type DashboardHandler struct {
	service *dashboardapp.Service
	logger  logger.Interface
}

func NewDashboardHandler(service *dashboardapp.Service, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  log,
	}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *DashboardHandler) AdoptionTrend(c *gin.Context) {
	resp, err := h.service.AdoptionTrend(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *DashboardHandler) PetDistribution(c *gin.Context) {
	resp, err := h.service.PetDistribution(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *DashboardHandler) RecentApplications(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	resp, err := h.service.RecentApplications(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
