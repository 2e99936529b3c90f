package handlers

import (
	"github.com/gin-gonic/gin"

	donationapp "github.com/shelterhq/pawhaven/internal/application/donation"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// DonationHandler handles donation endpoints.
type DonationHandler struct {
	service *donationapp.Service
	logger  logger.Interface
}

func NewDonationHandler(service *donationapp.Service, log logger.Interface) *DonationHandler {
	return &DonationHandler{
		service: service,
		logger:  log,
	}
}

func (h *DonationHandler) Create(c *gin.Context) {
	var req donationapp.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "donation created successfully")
}

func (h *DonationHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := donationapp.ListDonationsQuery{
		Status:       c.Query("status"),
		DonorName:    c.Query("donorName"),
		DonationType: c.Query("donationType"),
		DonorType:    c.Query("donorType"),
		Page:         pagination.Page,
		Limit:        pagination.Limit,
	}

	donations, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, donations, total, pagination.Page, pagination.Limit)
}

func (h *DonationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
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

func (h *DonationHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req donationapp.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "donation updated successfully")
}

func (h *DonationHandler) Confirm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "donation confirmed")
}

func (h *DonationHandler) Cancel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "donation cancelled")
}

func (h *DonationHandler) IssueReceipt(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.IssueReceipt(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "receipt issued")
}

func (h *DonationHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "donation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "donation deleted successfully")
}

func (h *DonationHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
