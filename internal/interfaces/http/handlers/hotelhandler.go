package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/hotel/dto"
	"stayops/internal/application/hotel/usecases"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type HotelHandler struct {
	createUC *usecases.CreateHotelUseCase
	getUC    *usecases.GetHotelUseCase
	searchUC *usecases.SearchHotelsUseCase
	updateUC *usecases.UpdateHotelUseCase
	logger   logger.Interface
}

func NewHotelHandler(
	createUC *usecases.CreateHotelUseCase,
	getUC *usecases.GetHotelUseCase,
	searchUC *usecases.SearchHotelsUseCase,
	updateUC *usecases.UpdateHotelUseCase,
	log logger.Interface,
) *HotelHandler {
	return &HotelHandler{
		createUC: createUC,
		getUC:    getUC,
		searchUC: searchUC,
		updateUC: updateUC,
		logger:   log.Named("handler.hotel"),
	}
}

// CreateHotel handles POST /hotels
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req dto.HotelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "hotel created", result)
}

// GetHotel handles GET /hotels/:id
func (h *HotelHandler) GetHotel(c *gin.Context) {
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

// SearchHotels handles GET /hotels. The "q" query parameter matches name,
// location, address and market; without it everything is listed.
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	p := utils.GetPagination(c)

	results, total, err := h.searchUC.Execute(c.Request.Context(), c.Query("q"), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", utils.NewPaginatedResult(results, total, p))
}

// UpdateHotel handles PUT /hotels/:id
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req dto.HotelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "hotel updated", result)
}
