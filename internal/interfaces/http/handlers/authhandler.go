package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/user/dto"
	"stayops/internal/application/user/usecases"
	"stayops/internal/interfaces/http/middleware"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      *usecases.LoginUseCase
	createUserUC *usecases.CreateUserUseCase
	getUserUC    *usecases.GetUserUseCase
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	createUserUC *usecases.CreateUserUseCase,
	getUserUC *usecases.GetUserUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		createUserUC: createUserUC,
		getUserUC:    getUserUC,
		logger:       log.Named("handler.auth"),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "login successful", result)
}

// CreateUser handles POST /users (admin only, enforced by the route).
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "user created", result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, apperrors.NewUnauthorizedError("missing authenticated user"))
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", result)
}
