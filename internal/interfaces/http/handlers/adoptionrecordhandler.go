package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	recordapp "github.com/shelterhq/pawhaven/internal/application/adoptionrecord"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// AdoptionRecordHandler handles archived adoption record endpoints.
// Record IDs are UUID strings, not numeric.
type AdoptionRecordHandler struct {
	service *recordapp.Service
	logger  logger.Interface
}

func NewAdoptionRecordHandler(service *recordapp.Service, log logger.Interface) *AdoptionRecordHandler {
	return &AdoptionRecordHandler{
		service: service,
		logger:  log,
	}
}

func (h *AdoptionRecordHandler) Create(c *gin.Context) {
	var req recordapp.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "adoption record created")
}

func (h *AdoptionRecordHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := recordapp.ListRecordsQuery{
		Status:       c.Query("status"),
		PetName:      c.Query("petName"),
		AdopterName:  c.Query("adopterName"),
		RecordNumber: c.Query("recordNumber"),
		Page:         pagination.Page,
		Limit:        pagination.Limit,
	}

	var err error
	if query.StartDate, err = parseDateQuery(c, "startDate"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.EndDate, err = parseDateQuery(c, "endDate"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	records, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, records, total, pagination.Page, pagination.Limit)
}

func (h *AdoptionRecordHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, 400, "record ID is required")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *AdoptionRecordHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, 400, "record ID is required")
		return
	}

	var req recordapp.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "adoption record updated")
}

func (h *AdoptionRecordHandler) AddFollowUp(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, 400, "record ID is required")
		return
	}

	var req recordapp.AddFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.AddFollowUp(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "follow-up added")
}

func (h *AdoptionRecordHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.ErrorResponse(c, 400, "record ID is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "adoption record deleted")
}

func (h *AdoptionRecordHandler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.NewValidationError(key + " must be a date in YYYY-MM-DD format")
	}

	return &t, nil
}
