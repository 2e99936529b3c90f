package handlers

import (
	"github.com/gin-gonic/gin"

	volunteerapp "github.com/shelterhq/pawhaven/internal/application/volunteer"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// VolunteerHandler handles volunteer management endpoints.
type VolunteerHandler struct {
	service *volunteerapp.Service
	logger  logger.Interface
}

func NewVolunteerHandler(service *volunteerapp.Service, log logger.Interface) *VolunteerHandler {
	return &VolunteerHandler{
		service: service,
		logger:  log,
	}
}

func (h *VolunteerHandler) Create(c *gin.Context) {
	var req volunteerapp.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "volunteer created successfully")
}

func (h *VolunteerHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := volunteerapp.ListVolunteersQuery{
		Status: c.Query("status"),
		Name:   c.Query("name"),
		Skills: c.Query("skills"),
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	}

	volunteers, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, volunteers, total, pagination.Page, pagination.Limit)
}

func (h *VolunteerHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "volunteer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *VolunteerHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "volunteer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req volunteerapp.UpdateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "volunteer updated successfully")
}

func (h *VolunteerHandler) AddHours(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "volunteer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req volunteerapp.AddHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.service.AddHours(c.Request.Context(), id, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "service hours recorded")
}

func (h *VolunteerHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "volunteer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "volunteer deleted successfully")
}

func (h *VolunteerHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
