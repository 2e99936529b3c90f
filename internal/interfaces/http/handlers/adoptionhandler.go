package handlers

import (
	"github.com/gin-gonic/gin"

	adoptionapp "github.com/shelterhq/pawhaven/internal/application/adoption"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// AdoptionHandler handles adoption application endpoints.
type AdoptionHandler struct {
	service *adoptionapp.Service
	logger  logger.Interface
}

func NewAdoptionHandler(service *adoptionapp.Service, log logger.Interface) *AdoptionHandler {
	return &AdoptionHandler{
		service: service,
		logger:  log,
	}
}

func (h *AdoptionHandler) Create(c *gin.Context) {
	var req adoptionapp.CreateAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "adoption application submitted")
}

func (h *AdoptionHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := adoptionapp.ListAdoptionsQuery{
		Status:        c.Query("status"),
		ApplicantName: c.Query("applicantName"),
		PetName:       c.Query("petName"),
		Page:          pagination.Page,
		Limit:         pagination.Limit,
	}

	adoptions, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, adoptions, total, pagination.Page, pagination.Limit)
}

func (h *AdoptionHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "adoption")
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

func (h *AdoptionHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "adoption")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req adoptionapp.UpdateAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "adoption updated successfully")
}

func (h *AdoptionHandler) Review(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "adoption")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req adoptionapp.ReviewAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Review(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "adoption reviewed")
}

func (h *AdoptionHandler) Cancel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "adoption")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "adoption cancelled")
}

func (h *AdoptionHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "adoption")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "adoption deleted successfully")
}

func (h *AdoptionHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
