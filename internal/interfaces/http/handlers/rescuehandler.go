package handlers

import (
	"github.com/gin-gonic/gin"

	rescueapp "github.com/shelterhq/pawhaven/internal/application/rescue"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// RescueHandler handles rescue record endpoints.
type RescueHandler struct {
	service *rescueapp.Service
	logger  logger.Interface
}

func NewRescueHandler(service *rescueapp.Service, log logger.Interface) *RescueHandler {
	return &RescueHandler{
		service: service,
		logger:  log,
	}
}

func (h *RescueHandler) Create(c *gin.Context) {
	var req rescueapp.CreateRescueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "rescue record created")
}

func (h *RescueHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := rescueapp.ListRescuesQuery{
		Rescuer:         c.Query("rescuer"),
		RescueType:      c.Query("rescueType"),
		HealthCondition: c.Query("healthCondition"),
		RescueLocation:  c.Query("rescueLocation"),
		Page:            pagination.Page,
		Limit:           pagination.Limit,
	}

	rescues, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, rescues, total, pagination.Page, pagination.Limit)
}

func (h *RescueHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "rescue")
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

func (h *RescueHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "rescue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req rescueapp.UpdateRescueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "rescue record updated")
}

func (h *RescueHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "rescue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "rescue record deleted")
}

func (h *RescueHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
