package handlers

import (
	"github.com/gin-gonic/gin"

	"stayops/internal/application/contact/dto"
	"stayops/internal/application/contact/usecases"
	"stayops/internal/shared/logger"
	"stayops/internal/shared/utils"
)

type ContactHandler struct {
	createUC *usecases.CreateContactUseCase
	getUC    *usecases.GetContactUseCase
	listUC   *usecases.ListContactsUseCase
	updateUC *usecases.UpdateContactUseCase
	deleteUC *usecases.DeleteContactUseCase
	logger   logger.Interface
}

func NewContactHandler(
	createUC *usecases.CreateContactUseCase,
	getUC *usecases.GetContactUseCase,
	listUC *usecases.ListContactsUseCase,
	updateUC *usecases.UpdateContactUseCase,
	deleteUC *usecases.DeleteContactUseCase,
	log logger.Interface,
) *ContactHandler {
	return &ContactHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log.Named("handler.contact"),
	}
}

// CreateContact handles POST /contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req dto.ContactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "contact created", result)
}

// GetContact handles GET /contacts/:id
func (h *ContactHandler) GetContact(c *gin.Context) {
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

// ListContacts handles GET /contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	p := utils.GetPagination(c)

	results, total, err := h.listUC.Execute(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "", utils.NewPaginatedResult(results, total, p))
}

// UpdateContact handles PUT /contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req dto.ContactPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.OKResponse(c, "contact updated", result)
}

// DeleteContact handles DELETE /contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
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
