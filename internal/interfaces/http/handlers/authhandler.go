package handlers

import (
	"github.com/gin-gonic/gin"

	authapp "github.com/shelterhq/pawhaven/internal/application/auth"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
	"github.com/shelterhq/pawhaven/internal/shared/utils"
)

// AuthHandler handles login and registration.
type AuthHandler struct {
	service *authapp.Service
	logger  logger.Interface
}

func NewAuthHandler(service *authapp.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, resp, "login successful")
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "registration successful")
}
