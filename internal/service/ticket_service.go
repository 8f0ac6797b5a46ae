// ticket_service.go
package service

import (
	"context"
	"time"

	"aventura-gamer-service/internal/model"
	"aventura-gamer-service/internal/status"

	"github.com/google/uuid"
)

type TicketRepository interface {
	Save(ctx context.Context, t *model.ServiceTicket) error
	FindByTicketID(ctx context.Context, ticketID string) (*model.ServiceTicket, error)
	UpdateEstado(ctx context.Context, ticketID, estado string, quote *float64, adminNotes string, adminImages []string) error
	AppendComment(ctx context.Context, ticketID string, comment model.TicketComment) error
	FindAll(ctx context.Context) ([]*model.ServiceTicket, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.ServiceTicket, error)
}

type TicketService struct {
	repo TicketRepository
}

func NewTicketService(r TicketRepository) *TicketService {
	return &TicketService{repo: r}
}

// CreateTicket lo usa el staff al recibir un equipo en el taller.
func (s *TicketService) CreateTicket(ctx context.Context, userID, description string) (*model.ServiceTicket, error) {
	t := &model.ServiceTicket{
		TicketID:    uuid.NewString(),
		UserID:      userID,
		Estado:      status.TicketRecibido,
		Description: description,
	}
	return t, s.repo.Save(ctx, t)
}

func (s *TicketService) GetByTicketID(ctx context.Context, ticketID string) (*model.ServiceTicket, error) {
	return s.repo.FindByTicketID(ctx, ticketID)
}

func (s *TicketService) GetAll(ctx context.Context) ([]*model.ServiceTicket, error) {
	return s.repo.FindAll(ctx)
}

func (s *TicketService) GetByUserID(ctx context.Context, userID string) ([]*model.ServiceTicket, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// UpdateEstado aplica las reglas (laxas) del taller: el ticket puede volver
// atrás, salvo que entregado es terminal y requiere pasar por completado.
func (s *TicketService) UpdateEstado(ctx context.Context, ticketID, estado string, quote *float64, adminNotes string, adminImages []string) error {
	t, err := s.repo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}

	if t.Estado == estado {
		return nil
	}
	if err := status.ValidateTicketTransition(t.Estado, estado); err != nil {
		return err
	}

	return s.repo.UpdateEstado(ctx, ticketID, estado, quote, adminNotes, adminImages)
}

// AppendComment agrega un mensaje al hilo. Solo el dueño o el staff pueden
// escribir; el rol del autor queda registrado en el comentario.
func (s *TicketService) AppendComment(ctx context.Context, ticketID, authorID, text string, isStaff bool) (*model.TicketComment, error) {
	t, err := s.repo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isStaff && t.UserID != authorID {
		return nil, ErrForbidden
	}

	role := "customer"
	if isStaff {
		role = "staff"
	}
	comment := model.TicketComment{
		AuthorID:   authorID,
		AuthorRole: role,
		Text:       text,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.AppendComment(ctx, ticketID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

