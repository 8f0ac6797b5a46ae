// ticket.go
package status

// Estados de una orden de servicio (reparación en taller). Taxonomía propia,
// separada del envío: la maneja el staff y admite idas y vueltas (por ejemplo
// volver a esperando_aprobacion si hace falta un presupuesto nuevo).
const (
	TicketRecibido            = "recibido"
	TicketEnDiagnostico       = "en_diagnostico"
	TicketEsperandoAprobacion = "esperando_aprobacion"
	TicketReparando           = "reparando"
	TicketCompletado          = "completado"
	TicketEntregado           = "entregado"
)

var ticketDisplays = map[string]Display{
	TicketRecibido:            {Icon: "inbox", ColorClass: "text-blue-500", Label: "Recibido"},
	TicketEnDiagnostico:       {Icon: "search", ColorClass: "text-yellow-500", Label: "En Diagnóstico"},
	TicketEsperandoAprobacion: {Icon: "clock", ColorClass: "text-orange-500", Label: "Esperando Aprobación"},
	TicketReparando:           {Icon: "wrench", ColorClass: "text-purple-500", Label: "Reparando"},
	TicketCompletado:          {Icon: "check-circle", ColorClass: "text-green-500", Label: "Completado"},
	TicketEntregado:           {Icon: "package-check", ColorClass: "text-green-700", Label: "Entregado"},
}

// ClassifyTicket mapea un estado de servicio a su tripla de presentación,
// con el mismo contrato de fallback que Classify.
func ClassifyTicket(estado string) Display {
	if d, ok := ticketDisplays[estado]; ok {
		return d
	}
	return displayUnknown
}

// IsValidTicketState indica si el estado pertenece a la taxonomía de servicio.
func IsValidTicketState(estado string) bool {
	_, ok := ticketDisplays[estado]
	return ok
}

// ValidateTicketTransition aplica las reglas (más laxas) del taller:
//   - entregado es terminal
//   - a entregado solo se llega desde completado
//   - cualquier otro movimiento entre estados conocidos está permitido
func ValidateTicketTransition(current, next string) error {
	if current == TicketEntregado {
		return ErrFinalState
	}
	if !IsValidTicketState(next) {
		return ErrInvalidTransition
	}
	if next == TicketEntregado && current != TicketCompletado {
		return ErrInvalidTransition
	}
	return nil
}
