package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/booking/dto"
	"stayops/internal/application/booking/usecases"
	"stayops/internal/interfaces/http/middleware"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type BookingHandler struct {
	createUC *usecases.CreateBookingUseCase
	getUC    *usecases.GetBookingUseCase
	listUC   *usecases.ListBookingsUseCase
	logger   logger.Interface
}

func NewBookingHandler(
	createUC *usecases.CreateBookingUseCase,
	getUC *usecases.GetBookingUseCase,
	listUC *usecases.ListBookingsUseCase,
	log logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log.Named("handler.booking"),
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, apperrors.NewUnauthorizedError("missing authenticated user"))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "booking created", result)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, apperrors.NewUnauthorizedError("missing authenticated user"))
		return
	}

	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", result)
}

// ListBookings handles GET /bookings, returning only the caller's bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, apperrors.NewUnauthorizedError("missing authenticated user"))
		return
	}

	p := utils.GetPagination(c)

	results, total, err := h.listUC.Execute(c.Request.Context(), userID, p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", utils.NewPaginatedResult(results, total, p))
}
