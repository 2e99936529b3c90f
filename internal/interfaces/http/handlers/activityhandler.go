package handlers

import (
	"github.com/gin-gonic/gin"

	activityapp "github.com/shelterhq/pawhaven/internal/application/activity"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// ActivityHandler handles volunteer activity endpoints.
type ActivityHandler struct {
	service *activityapp.Service
	logger  logger.Interface
}

func NewActivityHandler(service *activityapp.Service, log logger.Interface) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  log,
	}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req activityapp.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "activity created successfully")
}

func (h *ActivityHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := activityapp.ListActivitiesQuery{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Page:     pagination.Page,
		Limit:    pagination.Limit,
	}

	activities, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, activities, total, pagination.Page, pagination.Limit)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "activity")
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

func (h *ActivityHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "activity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req activityapp.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "activity updated successfully")
}

func (h *ActivityHandler) Join(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "activity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Join(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "joined activity")
}

func (h *ActivityHandler) Leave(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "activity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Leave(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "left activity")
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "activity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "activity deleted successfully")
}

func (h *ActivityHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
