// status.go
package status

import "errors"

// Errores de negocio exportados (los usan service y controller)
var (
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrFinalState        = errors.New("no se puede cambiar el estado de una orden en estado final")
)

// Secuencia canónica de envío. "cancelled" queda afuera a propósito:
// es un estado absorbente lateral, no un paso del tracker.
const (
	StatusPending        = "pending"
	StatusProcessing     = "processing"
	StatusShipped        = "shipped"
	StatusInTransit      = "in_transit"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

var canonicalOrder = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
}

// Estados finales
var finalStates = map[string]bool{
	StatusDelivered: true,
	StatusCancelled: true,
}

// Display agrupa lo que el frontend necesita para pintar un estado.
type Display struct {
	Icon       string `json:"icon"`
	ColorClass string `json:"colorClass"`
	Label      string `json:"label"`
}

// Los estados vienen de un enum del backend que puede extenderse por fuera
// del cliente: un valor desconocido nunca es error, se degrada a "unknown".
var displayUnknown = Display{Icon: "help-circle", ColorClass: "text-muted-foreground", Label: "Desconocido"}

var displays = map[string]Display{
	StatusPending:        {Icon: "clock", ColorClass: "text-yellow-500", Label: "Pendiente"},
	StatusProcessing:     {Icon: "package", ColorClass: "text-blue-500", Label: "En Preparación"},
	StatusShipped:        {Icon: "send", ColorClass: "text-indigo-500", Label: "Despachado"},
	StatusInTransit:      {Icon: "truck", ColorClass: "text-orange-500", Label: "En Camino"},
	StatusOutForDelivery: {Icon: "map-pin", ColorClass: "text-purple-500", Label: "En Reparto"},
	StatusDelivered:      {Icon: "check-circle", ColorClass: "text-green-500", Label: "Entregado"},
	StatusCancelled:      {Icon: "x-circle", ColorClass: "text-red-500", Label: "Cancelado"},
}

// Classify mapea un estado de envío a su tripla de presentación.
// Total sobre strings: cualquier valor no reconocido devuelve la tripla "unknown".
func Classify(s string) Display {
	if d, ok := displays[s]; ok {
		return d
	}
	return displayUnknown
}

// IsFinal indica si el estado es terminal (entregado o cancelado).
func IsFinal(s string) bool {
	return finalStates[s]
}

// IsValid indica si el string es un miembro del enum (incluye cancelled).
func IsValid(s string) bool {
	_, ok := displays[s]
	return ok
}

// indexOf devuelve la posición en la secuencia canónica, -1 si no pertenece
// (cancelled y desconocidos quedan en -1).
func indexOf(s string) int {
	for i, v := range canonicalOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// Progress describe el avance de la orden sobre el tracker de 6 pasos.
type Progress struct {
	StepIndex      int     `json:"stepIndex"`
	Percent        float64 `json:"percent"`
	CompletedSteps []bool  `json:"completedSteps"`
}

// ComputeProgress calcula el índice del paso actual, el porcentaje de llenado
// de la barra y qué pasos se consideran completados. Para cancelled o un valor
// desconocido: índice -1, 0% y ningún paso completado.
func ComputeProgress(s string) Progress {
	idx := indexOf(s)

	completed := make([]bool, len(canonicalOrder))
	if idx >= 0 {
		for i := range completed {
			completed[i] = idx >= i
		}
	}

	percent := 0.0
	if idx > 0 {
		percent = float64(idx) / float64(len(canonicalOrder)-1) * 100
	}
	if percent > 100 {
		percent = 100
	}

	return Progress{StepIndex: idx, Percent: percent, CompletedSteps: completed}
}

// ValidateTransition valida el pasaje current -> next:
//   - desde un estado final no se sale (ErrFinalState)
//   - cancelar está permitido desde cualquier estado no final
//   - si no, next debe ser igual o posterior a current en la secuencia
//     canónica (no hay retrocesos)
func ValidateTransition(current, next string) error {
	if finalStates[current] {
		return ErrFinalState
	}
	if next == StatusCancelled {
		return nil
	}
	ci, ni := indexOf(current), indexOf(next)
	if ni < 0 {
		return ErrInvalidTransition
	}
	// Una orden recién creada puede tener un estado fuera del enum si el
	// backend se extendió: la tratamos como anterior a todo.
	if ci < 0 {
		return nil
	}
	if ni < ci {
		return ErrInvalidTransition
	}
	return nil
}
