package handlers

import (
	"github.com/gin-gonic/gin"

	notificationapp "github.com/shelterhq/pawhaven/internal/application/notification"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// NotificationHandler handles system notification endpoints.
type NotificationHandler struct {
	service *notificationapp.Service
	logger  logger.Interface
}

func NewNotificationHandler(service *notificationapp.Service, log logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  log,
	}
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req notificationapp.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "notification created")
}

func (h *NotificationHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := notificationapp.ListNotificationsQuery{
		Type:       c.Query("type"),
		UnreadOnly: c.Query("unreadOnly") == "true",
		Page:       pagination.Page,
		Limit:      pagination.Limit,
	}

	notifications, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, notifications, total, pagination.Page, pagination.Limit)
}

func (h *NotificationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "notification")
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

func (h *NotificationHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req notificationapp.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "notification updated")
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	resp, err := h.service.MarkAllRead(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "all notifications marked as read")
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	resp, err := h.service.UnreadCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "notification deleted")
}
