// Package handlers exposes the REST API over the application usecases.
package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/ticket/dto"
	"stayops/internal/application/ticket/usecases"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type TicketHandler struct {
	createUC       *usecases.CreateTicketUseCase
	getUC          *usecases.GetTicketUseCase
	listUC         *usecases.ListTicketsUseCase
	changeStatusUC *usecases.ChangeTicketStatusUseCase
	deleteUC       *usecases.DeleteTicketUseCase
	analyzeUC      *usecases.AnalyzeTicketUseCase
	replyUC        *usecases.ReplyTicketUseCase
	checkInboxUC   *usecases.CheckInboxUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	changeStatusUC *usecases.ChangeTicketStatusUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	analyzeUC *usecases.AnalyzeTicketUseCase,
	replyUC *usecases.ReplyTicketUseCase,
	checkInboxUC *usecases.CheckInboxUseCase,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		changeStatusUC: changeStatusUC,
		deleteUC:       deleteUC,
		analyzeUC:      analyzeUC,
		replyUC:        replyUC,
		checkInboxUC:   checkInboxUC,
		logger:         log.Named("handler.ticket"),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "ticket created", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
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

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p := utils.GetPagination(c)
	req := dto.ListTicketsRequest{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Priority:  c.Query("priority"),
		FromEmail: c.Query("from_email"),
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	results, total, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", utils.NewPaginatedResult(results, total, p))
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req dto.ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "ticket status updated", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
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

// AnalyzeTicket handles POST /tickets/:id/analyze
func (h *TicketHandler) AnalyzeTicket(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := h.analyzeUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "ticket analyzed", result)
}

// ReplyTicket handles POST /tickets/:id/reply
func (h *TicketHandler) ReplyTicket(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req dto.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.replyUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "reply sent", result)
}

// CheckInbox handles POST /tickets/check-inbox. The check runs in the
// background; the response only says whether one was queued.
func (h *TicketHandler) CheckInbox(c *gin.Context) {
	triggered := h.checkInboxUC.Execute()
	utils.AcceptedResponse(c, "inbox check requested", gin.H{"triggered": triggered})
}
