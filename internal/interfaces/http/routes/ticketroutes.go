package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.PUT("/:id/assignee", config.TicketHandler.AssignTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.TicketHandler.CloseTicket)
	}
}
