package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	assignTicketUC usecases.AssignTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		closeTicketUC:  closeTicketUC,
		assignTicketUC: assignTicketUC,
		getTicketUC:    getTicketUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateTicketResponse{ID: result.TicketID}, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CloseTicket handles DELETE /tickets/:id
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result)
}

// AssignTicket handles PUT /tickets/:id/assignee
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID: c.Param("id"),
		UserID:   req.UserID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

func (h *TicketHandler) respondError(c *gin.Context, err error) {
	mapped := toAppError(err)

	path := c.Request.URL.Path
	switch {
	case errors.IsConflictError(mapped):
		h.logger.Warnw("ticket version conflict", "path", path, "error", err)
	case errors.IsNotFoundError(mapped), errors.IsValidationError(mapped):
		h.logger.Debugw("ticket request rejected", "path", path, "error", err)
	case mapped.Type == errors.ErrorTypeInternal:
		h.logger.Errorw("ticket request failed", "path", path, "error", err)
	default:
		h.logger.Infow("ticket request rejected", "path", path, "error", err)
	}

	utils.ErrorResponseWithError(c, mapped)
}
