package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/guest/dto"
	"stayops/internal/application/guest/usecases"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type GuestHandler struct {
	createUC *usecases.CreateGuestUseCase
	getUC    *usecases.GetGuestUseCase
	listUC   *usecases.ListGuestsUseCase
	updateUC *usecases.UpdateGuestUseCase
	deleteUC *usecases.DeleteGuestUseCase
	logger   logger.Interface
}

func NewGuestHandler(
	createUC *usecases.CreateGuestUseCase,
	getUC *usecases.GetGuestUseCase,
	listUC *usecases.ListGuestsUseCase,
	updateUC *usecases.UpdateGuestUseCase,
	deleteUC *usecases.DeleteGuestUseCase,
	log logger.Interface,
) *GuestHandler {
	return &GuestHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log.Named("handler.guest"),
	}
}

// CreateGuest handles POST /guests
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req dto.GuestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "guest created", result)
}

// GetGuest handles GET /guests/:id
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", result)
}

// ListGuests handles GET /guests
func (h *GuestHandler) ListGuests(c *gin.Context) {
	p := utils.GetPagination(c)

	results, total, err := h.listUC.Execute(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", utils.NewPaginatedResult(results, total, p))
}

// UpdateGuest handles PUT /guests/:id
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req dto.GuestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "guest updated", result)
}

// DeleteGuest handles DELETE /guests/:id
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}
