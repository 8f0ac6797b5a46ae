package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelebrationQueueSingleSlot(t *testing.T) {
	q := NewCelebrationQueue()
	require.Nil(t, q.Current())

	q.Enqueue(CelebrationEvent{Type: CelebrationPointsGained, Points: 30})
	require.NotNil(t, q.Current())
	assert.Equal(t, CelebrationPointsGained, q.Current().Type)

	// Un evento nuevo antes de descartar el actual se difiere, no se pisa
	q.Enqueue(CelebrationEvent{Type: CelebrationLevelUp, Level: 2})
	assert.Equal(t, CelebrationPointsGained, q.Current().Type)
	assert.Equal(t, 2, q.Len())

	q.Dismiss()
	require.NotNil(t, q.Current())
	assert.Equal(t, CelebrationLevelUp, q.Current().Type)
	assert.Equal(t, 2, q.Current().Level)

	q.Dismiss()
	assert.Nil(t, q.Current())
	assert.Zero(t, q.Len())
}

func TestCelebrationQueueFIFO(t *testing.T) {
	q := NewCelebrationQueue()
	q.Enqueue(CelebrationEvent{Type: CelebrationPointsGained, Points: 10})
	q.Enqueue(CelebrationEvent{Type: CelebrationPointsGained, Points: 20})
	q.Enqueue(CelebrationEvent{Type: CelebrationLevelUp, Level: 2})

	var seen []int
	for q.Current() != nil {
		if q.Current().Type == CelebrationPointsGained {
			seen = append(seen, q.Current().Points)
		}
		q.Dismiss()
	}
	assert.Equal(t, []int{10, 20}, seen)
}

func TestCelebrationQueueClear(t *testing.T) {
	q := NewCelebrationQueue()
	q.Enqueue(CelebrationEvent{Type: CelebrationPointsGained, Points: 10})
	q.Enqueue(CelebrationEvent{Type: CelebrationLevelUp, Level: 2})

	// Navegar a otra vista descarta todo sin efectos persistidos
	q.Clear()
	assert.Nil(t, q.Current())
	assert.Zero(t, q.Len())
}

func TestCelebrationDefaultDuration(t *testing.T) {
	q := NewCelebrationQueue()
	q.Enqueue(CelebrationEvent{Type: CelebrationPointsGained, Points: 5})
	assert.Equal(t, DefaultCelebrationDuration, q.Current().Duration)
}

// Escenario punta a punta: 80 puntos + 30 de premio cruzan el nivel y la
// cola queda con exactamente dos celebraciones en orden.
func TestAwardCelebrationSequence(t *testing.T) {
	res, err := AwardPoints(Profile{Points: 80, Level: 1}, 30)
	require.NoError(t, err)
	require.True(t, res.LeveledUp)

	events := CelebrationsFor(30, res)
	require.Len(t, events, 2)
	assert.Equal(t, CelebrationPointsGained, events[0].Type)
	assert.Equal(t, 30, events[0].Points)
	assert.Equal(t, CelebrationLevelUp, events[1].Type)
	assert.Equal(t, 2, events[1].Level)

	// En la cola: los puntos se muestran primero, el nivel espera su turno
	q := NewCelebrationQueue()
	for _, e := range events {
		q.Enqueue(e)
	}
	assert.Equal(t, CelebrationPointsGained, q.Current().Type)
	q.Dismiss()
	assert.Equal(t, CelebrationLevelUp, q.Current().Type)
}

func TestCelebrationsForNoLevelUp(t *testing.T) {
	res, err := AwardPoints(Profile{Points: 10, Level: 1}, 30)
	require.NoError(t, err)

	events := CelebrationsFor(30, res)
	require.Len(t, events, 1)
	assert.Equal(t, CelebrationPointsGained, events[0].Type)
}
