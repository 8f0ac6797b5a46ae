// celebration.go
package gamification

import "time"

// Tipos de evento de celebración.
const (
	CelebrationPointsGained = "points_gained"
	CelebrationLevelUp      = "level_up"
)

// DefaultCelebrationDuration es lo que cada celebración queda visible antes
// de descartarse.
const DefaultCelebrationDuration = 3 * time.Second

// CelebrationEvent es una notificación transitoria de UI. No es estado de
// registro: descartar la cola no tiene efectos persistidos.
type CelebrationEvent struct {
	Type     string        `json:"type"`
	Points   int           `json:"points,omitempty"`
	Level    int           `json:"level,omitempty"`
	Duration time.Duration `json:"duration"`
}

// CelebrationQueue es una cola de slot único: hay a lo sumo un evento
// "actual" visible; lo que llega mientras el slot está ocupado se difiere
// en orden FIFO, nunca se pierde. La posee el estado de sesión de
// gamificación, no es estado global compartido.
type CelebrationQueue struct {
	current *CelebrationEvent
	pending []CelebrationEvent
}

func NewCelebrationQueue() *CelebrationQueue {
	return &CelebrationQueue{}
}

// Current devuelve el evento visible, o nil si no hay ninguno.
func (q *CelebrationQueue) Current() *CelebrationEvent {
	return q.current
}

// Enqueue agrega un evento: ocupa el slot si está libre, si no queda
// pendiente detrás de los ya diferidos.
func (q *CelebrationQueue) Enqueue(e CelebrationEvent) {
	if e.Duration == 0 {
		e.Duration = DefaultCelebrationDuration
	}
	if q.current == nil {
		q.current = &e
		return
	}
	q.pending = append(q.pending, e)
}

// Dismiss libera el slot y promueve el siguiente evento diferido, si hay.
func (q *CelebrationQueue) Dismiss() {
	if len(q.pending) == 0 {
		q.current = nil
		return
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &next
}

// Len cuenta los eventos vivos (actual + diferidos).
func (q *CelebrationQueue) Len() int {
	n := len(q.pending)
	if q.current != nil {
		n++
	}
	return n
}

// Clear descarta todo (por ejemplo cuando el usuario navega a otra vista).
func (q *CelebrationQueue) Clear() {
	q.current = nil
	q.pending = nil
}

// CelebrationsFor arma la secuencia de celebraciones de un otorgamiento:
// primero los puntos ganados y, si hubo subida de nivel, la celebración de
// nivel a continuación. Son secuenciales, nunca simultáneas.
func CelebrationsFor(delta int, res AwardResult) []CelebrationEvent {
	if delta <= 0 {
		return nil
	}
	events := []CelebrationEvent{
		{Type: CelebrationPointsGained, Points: delta, Duration: DefaultCelebrationDuration},
	}
	if res.LeveledUp {
		events = append(events, CelebrationEvent{
			Type:     CelebrationLevelUp,
			Level:    res.ToLevel,
			Duration: DefaultCelebrationDuration,
		})
	}
	return events
}
