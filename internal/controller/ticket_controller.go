package controller

import (
	"net/http"

	"aventura-gamer-service/internal/dto"
	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/service"
	"aventura-gamer-service/internal/status"

	"github.com/gin-gonic/gin"
)

type TicketController struct {
	Service *service.TicketService
}

func NewTicketController(s *service.TicketService) *TicketController {
	return &TicketController{Service: s}
}

func decorateTickets(tickets []*model.ServiceTicket) []gin.H {
	out := make([]gin.H, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, gin.H{
			"ticket":  t,
			"display": status.ClassifyTicket(t.Estado),
		})
	}
	return out
}

// POST /admin/tickets — el staff registra un equipo recibido
func (ctl *TicketController) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := ctl.Service.CreateTicket(c.Request.Context(), req.UserID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /tickets/mine
func (ctl *TicketController) GetMyTickets(c *gin.Context) {
	tickets, err := ctl.Service.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decorateTickets(tickets))
}

// GET /admin/tickets — staff only
func (ctl *TicketController) GetAllTickets(c *gin.Context) {
	tickets, err := ctl.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decorateTickets(tickets))
}

// PATCH /admin/tickets/:ticketId/estado — staff only
func (ctl *TicketController) UpdateEstado(c *gin.Context) {
	ticketID := c.Param("ticketId")

	var req dto.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.UpdateEstado(c.Request.Context(), ticketID, req.Estado, req.Quote, req.AdminNotes, req.AdminImages)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "estado updated"})
}

// POST /tickets/:ticketId/comments — dueño o staff
func (ctl *TicketController) AppendComment(c *gin.Context) {
	ticketID := c.Param("ticketId")

	var req dto.AppendCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ctl.Service.AppendComment(c.Request.Context(), ticketID, c.GetString("userID"), req.Text, isStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
