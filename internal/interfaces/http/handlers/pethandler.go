package handlers

import (
	"github.com/gin-gonic/gin"

	petapp "github.com/shelterhq/pawhaven/internal/application/pet"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// PetHandler handles pet management endpoints.
type PetHandler struct {
	service *petapp.Service
	logger  logger.Interface
}

func NewPetHandler(service *petapp.Service, log logger.Interface) *PetHandler {
	return &PetHandler{
		service: service,
		logger:  log,
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	var req petapp.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "pet created successfully")
}

func (h *PetHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := petapp.ListPetsQuery{
		Type:           c.Query("type"),
		Gender:         c.Query("gender"),
		HealthStatus:   c.Query("healthStatus"),
		AdoptionStatus: c.Query("adoptionStatus"),
		Location:       c.Query("location"),
		Page:           pagination.Page,
		Limit:          pagination.Limit,
	}

	pets, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, pets, total, pagination.Page, pagination.Limit)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "pet")
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

func (h *PetHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "pet")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req petapp.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "pet updated successfully")
}

func (h *PetHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "pet")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "pet deleted successfully")
}

func (h *PetHandler) Favorite(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "pet")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Favorite(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "pet favorited")
}

func (h *PetHandler) Unfavorite(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "pet")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Unfavorite(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "pet unfavorited")
}

func (h *PetHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}
